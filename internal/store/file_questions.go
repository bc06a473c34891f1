package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"gopkg.in/yaml.v3"
)

const (
	markdownExt          = ".md"
	frontMatterDelimiter = "---"
)

// fileQuestionCatalog serves questions from <root>/<categoryID>/<questionID>.md.
// Files are read on every request, so edits show up without a restart.
type fileQuestionCatalog struct {
	root     string
	registry *CategoryRegistry
	logger   *logger.Logger
}

// NewFileQuestionCatalog checks the registry against the directory tree.
// A missing category directory is allowed and counts as empty. Any other
// path that is not a directory fails the construction.
func NewFileQuestionCatalog(root string, registry *CategoryRegistry, log *logger.Logger) (QuestionCatalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("questions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("questions directory %q is not a directory", root)
	}

	for _, category := range registry.All() {
		dir := filepath.Join(root, category.ID)
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn().
				Str("func", "NewFileQuestionCatalog").
				Str("category", category.ID).
				Msg("category directory is missing, it will be listed as empty")
		case err != nil:
			return nil, fmt.Errorf("category %q: %w", category.ID, err)
		case !info.IsDir():
			return nil, fmt.Errorf("category %q: %s is not a directory", category.ID, dir)
		}
	}

	return &fileQuestionCatalog{
		root:     root,
		registry: registry,
		logger:   log,
	}, nil
}

func (c *fileQuestionCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	infos := c.registry.All()
	categories := make([]models.Category, 0, len(infos))

	for _, info := range infos {
		names, err := c.markdownFiles(info.ID)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*fileQuestionCatalog.ListCategories").
				Str("category", info.ID).
				Msg("failed to read category directory")
			return nil, err
		}

		categories = append(categories, models.Category{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Count:       len(names),
		})
	}

	return categories, nil
}

func (c *fileQuestionCatalog) GetCategory(_ context.Context, categoryID string) (models.CategoryInfo, error) {
	info, ok := c.registry.Get(categoryID)
	if !ok {
		return models.CategoryInfo{}, ErrCategoryNotFound
	}

	return info, nil
}

// ListQuestions parses every markdown file of the category. Files that cannot
// be read or parsed are logged and skipped.
func (c *fileQuestionCatalog) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	info, ok := c.registry.Get(categoryID)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	names, err := c.markdownFiles(categoryID)
	if err != nil {
		log.Err(err).
			Str("func", "*fileQuestionCatalog.ListQuestions").
			Str("category", categoryID).
			Msg("failed to read category directory")
		return nil, err
	}

	questions := make([]models.Question, 0, len(names))
	for _, name := range names {
		question, err := c.readQuestion(info, strings.TrimSuffix(name, markdownExt))
		if err != nil {
			log.Warn().Err(err).
				Str("func", "*fileQuestionCatalog.ListQuestions").
				Str("category", categoryID).
				Str("file", name).
				Msg("skipping unreadable question file")
			continue
		}
		questions = append(questions, question)
	}

	slices.SortFunc(questions, func(a, b models.Question) int {
		return strings.Compare(a.ID, b.ID)
	})

	return questions, nil
}

func (c *fileQuestionCatalog) GetQuestion(ctx context.Context, categoryID, questionID string) (models.Question, error) {
	info, ok := c.registry.Get(categoryID)
	if !ok {
		return models.Question{}, ErrCategoryNotFound
	}
	if !isPlainName(questionID) {
		return models.Question{}, ErrQuestionNotFound
	}

	question, err := c.readQuestion(info, questionID)
	if errors.Is(err, os.ErrNotExist) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fileQuestionCatalog.GetQuestion").
			Str("category", categoryID).
			Str("question", questionID).
			Msg("failed to read question")
		return models.Question{}, err
	}

	return question, nil
}

// markdownFiles lists the *.md regular files of a category. A missing
// directory yields no files.
func (c *fileQuestionCatalog) markdownFiles(categoryID string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(c.root, categoryID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), markdownExt) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

func (c *fileQuestionCatalog) readQuestion(category models.CategoryInfo, questionID string) (models.Question, error) {
	content, err := os.ReadFile(filepath.Join(c.root, category.ID, questionID+markdownExt))
	if err != nil {
		return models.Question{}, err
	}

	meta, body, err := splitFrontMatter(string(content))
	if err != nil {
		return models.Question{}, err
	}

	var fm models.FrontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrMalformedFrontMatter, err)
	}

	return models.Question{
		ID:             questionID,
		CategoryID:     category.ID,
		Category:       category.Name,
		Question:       fm.Question,
		ShortAnswer:    fm.ShortAnswer,
		DetailedAnswer: body,
	}, nil
}

// splitFrontMatter separates a leading "---" delimited block from the body.
// The newline after the closing delimiter is consumed. Content without an
// opening delimiter is returned whole as body.
func splitFrontMatter(content string) (meta, body string, err error) {
	content = strings.TrimPrefix(content, "\ufeff")
	if !hasFrontMatter(content) {
		return "", content, nil
	}

	start := len(frontMatterDelimiter) + 1
	if strings.HasPrefix(content, frontMatterDelimiter+"\r") {
		start++
	}
	pos := start
	for {
		line, _, hasNewline := strings.Cut(content[pos:], "\n")
		next := pos + len(line)
		if hasNewline {
			next++
		}

		if strings.TrimRight(line, "\r") == frontMatterDelimiter {
			return content[start:pos], content[next:], nil
		}
		if !hasNewline {
			break
		}
		pos = next
	}

	return "", "", ErrMalformedFrontMatter
}

func hasFrontMatter(content string) bool {
	first, _, found := strings.Cut(strings.TrimPrefix(content, "\ufeff"), "\n")
	return found && strings.TrimRight(first, "\r") == frontMatterDelimiter
}
