package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-interview-prep/models"
	"gopkg.in/yaml.v3"
)

// CompanyCategoryID is the category whose files are managed by
// [CompanyFileStorage], one file per company.
const CompanyCategoryID = "company"

// DefaultCategories returns the built-in category registry in display order.
func DefaultCategories() []models.CategoryInfo {
	return []models.CategoryInfo{
		{ID: "network", Name: "네트워크", Description: "OSI 모델, TCP/IP, DNS 등"},
		{ID: "linux", Name: "Linux", Description: "리눅스 시스템 관리 및 명령어"},
		{ID: "cloud", Name: "클라우드", Description: "AWS, Azure, GCP 등 클라우드 서비스"},
		{ID: "container", Name: "컨테이너", Description: "Docker, Kubernetes 등"},
		{ID: "cicd", Name: "CI/CD", Description: "지속적 통합 및 배포"},
		{ID: "java", Name: "Java", Description: "Java 기초, JVM, Spring Framework 등"},
		{ID: CompanyCategoryID, Name: "기업별 질문", Description: "카카오, 네이버, 쿠팡 등 기업별 예상 질문"},
		{ID: "database", Name: "데이터베이스", Description: "SQL, 인덱스, 트랜잭션 등"},
		{ID: "python", Name: "Python", Description: "Python 기초 및 활용"},
		{ID: models.PortfolioCategory, Name: "포트폴리오", Description: "포트폴리오 기반 예상 질문"},
	}
}

// CategoryRegistry is the frozen id → metadata map of the catalog.
type CategoryRegistry struct {
	ordered []models.CategoryInfo
	byID    map[string]models.CategoryInfo
}

// NewCategoryRegistry validates infos and freezes them. Ids must be
// non-empty, unique and usable as a single directory name.
func NewCategoryRegistry(infos []models.CategoryInfo) (*CategoryRegistry, error) {
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCategoryRegistry)
	}

	registry := &CategoryRegistry{
		ordered: make([]models.CategoryInfo, 0, len(infos)),
		byID:    make(map[string]models.CategoryInfo, len(infos)),
	}
	for _, info := range infos {
		if !isPlainName(info.ID) {
			return nil, fmt.Errorf("%w: bad category id %q", ErrInvalidCategoryRegistry, info.ID)
		}
		if _, ok := registry.byID[info.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCategoryRegistry, info.ID)
		}
		registry.byID[info.ID] = info
		registry.ordered = append(registry.ordered, info)
	}

	return registry, nil
}

// LoadCategoryRegistry reads a YAML file with a top-level "categories" list.
// An empty path yields the [DefaultCategories] registry.
func LoadCategoryRegistry(path string) (*CategoryRegistry, error) {
	if path == "" {
		return NewCategoryRegistry(DefaultCategories())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var file struct {
		Categories []models.CategoryInfo `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidCategoryRegistry, err)
	}

	return NewCategoryRegistry(file.Categories)
}

// All returns the categories in registry order.
func (r *CategoryRegistry) All() []models.CategoryInfo {
	out := make([]models.CategoryInfo, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *CategoryRegistry) Get(id string) (models.CategoryInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// isPlainName reports whether name can be used as one path element inside
// a store directory.
func isPlainName(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, `/\`+"\x00") &&
		!strings.Contains(name, "..") &&
		name != "."
}
