package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, 0, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, 0, logger.Nop())

	assert.Same(t, svc, h.services)
}

func TestNewHandler_StoresRequestTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, 15*time.Second, logger.Nop())

	assert.Equal(t, 15*time.Second, h.requestTimeout)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, 0, log)

	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, 0, logger.Nop())
	h2 := NewHandler(&service.Services{}, 0, logger.Nop())

	assert.NotSame(t, h1, h2)
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := NewHandler(&service.Services{}, time.Second, logger.Nop()).Init()

	require.NotNil(t, router)
}
