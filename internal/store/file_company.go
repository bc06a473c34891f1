package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
	"gopkg.in/yaml.v3"
)

const companyBodyTemplate = `
## %[1]s 면접 예상 질문

### 1. 기술 스택

#### Q1: 질문을 추가해주세요

**답변 포인트**:
- 답변 내용을 작성하세요

### 면접 준비 팁

1. **회사 조사**
   - 기술 블로그 확인
   - 사용하는 기술 스택 파악

2. **실무 경험 준비**
   - STAR 기법으로 답변 준비
   - 구체적인 수치와 결과
`

// companyFileStorage keeps one markdown file per company under
// <root>/company. Appends to one file are serialized by a per-file lock and
// land through a rename, so readers never see a half-written file.
type companyFileStorage struct {
	dir    string
	locks  *keyedMutex
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewCompanyFileStorage stores company files in the company category
// directory below root.
func NewCompanyFileStorage(root string, log *logger.Logger) CompanyFileStorage {
	return &companyFileStorage{
		dir:    filepath.Join(root, CompanyCategoryID),
		locks:  newKeyedMutex(),
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
	}
}

// CreateCompany writes the template for companyName. The file is created
// exclusively; an existing file → [ErrCompanyAlreadyExists].
func (c *companyFileStorage) CreateCompany(ctx context.Context, companyName string) error {
	log := logger.FromContext(ctx)

	path, err := c.path(companyName)
	if err != nil {
		return err
	}

	content, err := companyTemplate(companyName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*companyFileStorage.CreateCompany").Msg("failed to create company directory")
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return ErrCompanyAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*companyFileStorage.CreateCompany").Str("company", companyName).Msg("failed to create company file")
		return err
	}

	_, writeErr := file.Write(content)
	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		log.Err(err).Str("func", "*companyFileStorage.CreateCompany").Str("company", companyName).Msg("failed to write company file")
		_ = os.Remove(path)
		return err
	}

	return nil
}

func (c *companyFileStorage) DeleteCompany(ctx context.Context, companyName string) error {
	path, err := c.path(companyName)
	if err != nil {
		return err
	}

	unlock := c.locks.Lock(path)
	defer unlock()

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrCompanyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*companyFileStorage.DeleteCompany").
			Str("company", companyName).
			Msg("failed to delete company file")
		return err
	}

	return nil
}

// AppendQuestion adds a question section at the end of the company file.
// Front matter is carried over through a yaml node, keeping key order and
// keys this package does not know about.
func (c *companyFileStorage) AppendQuestion(ctx context.Context, question models.CompanyQuestion) error {
	log := logger.FromContext(ctx)

	path, err := c.path(question.CompanyName)
	if err != nil {
		return err
	}

	unlock := c.locks.Lock(path)
	defer unlock()

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrCompanyNotFound
	}
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "*companyFileStorage.AppendQuestion").Str("company", question.CompanyName).Msg("failed to read company file")
		return err
	}

	updated, err := appendCompanySection(string(content), question)
	if err != nil {
		log.Err(err).Str("func", "*companyFileStorage.AppendQuestion").Str("company", question.CompanyName).Msg("failed to parse company file")
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, c.uuid.Generate())
	if err := os.WriteFile(tmp, []byte(updated), info.Mode().Perm()); err != nil {
		log.Err(err).Str("func", "*companyFileStorage.AppendQuestion").Str("company", question.CompanyName).Msg("failed to write temp file")
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Err(err).Str("func", "*companyFileStorage.AppendQuestion").Str("company", question.CompanyName).Msg("failed to replace company file")
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

func (c *companyFileStorage) path(companyName string) (string, error) {
	if !isPlainName(companyName) || strings.TrimSpace(companyName) != companyName {
		return "", ErrInvalidCompanyName
	}

	return filepath.Join(c.dir, companyName+markdownExt), nil
}

func companyTemplate(companyName string) ([]byte, error) {
	meta := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "question"},
			{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: companyName + " 인프라 엔지니어 예상 질문"},
			{Kind: yaml.ScalarNode, Value: "shortAnswer"},
			{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: companyName + "에서 물어볼 만한 질문들을 정리합니다."},
		},
	}

	return renderMarkdown(meta, fmt.Sprintf(companyBodyTemplate, companyName))
}

func appendCompanySection(content string, question models.CompanyQuestion) (string, error) {
	meta, body, err := splitFrontMatter(content)
	if err != nil {
		return "", err
	}

	var section strings.Builder
	fmt.Fprintf(&section, "\n\n### %s\n\n**답변**:\n%s\n\n", question.Question, question.ShortAnswer)
	if question.DetailedAnswer != "" {
		fmt.Fprintf(&section, "\n**상세 답변**:\n%s\n", question.DetailedAnswer)
	}
	section.WriteString("\n")

	body += section.String()

	if !hasFrontMatter(content) {
		return body, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(meta), &node); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedFrontMatter, err)
	}

	out, err := renderMarkdown(&node, body)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// renderMarkdown joins a front matter node and a body. A zero node renders
// as an empty front matter block.
func renderMarkdown(meta *yaml.Node, body string) ([]byte, error) {
	var b strings.Builder
	b.WriteString(frontMatterDelimiter + "\n")

	if meta.Kind != 0 {
		out, err := yaml.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedFrontMatter, err)
		}
		b.Write(out)
	}

	b.WriteString(frontMatterDelimiter + "\n")
	b.WriteString(body)

	return []byte(b.String()), nil
}

// keyedMutex hands out one mutex per key and forgets it once nobody holds
// or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock blocks until key is free and returns the matching unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
