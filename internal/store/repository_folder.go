package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/jackc/pgerrcode"
)

// folderRepository stores both folder kinds in the "folders" table.
// The kind column keeps user folders and portfolio folders apart, so the
// same owner may reuse a name across kinds.
type folderRepository struct {
	*DB
	logger *logger.Logger
}

// NewFolderRepository constructs a [FolderRepository] on top of db.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	return &folderRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateFolder inserts folder and returns the stored row.
// A name already used by the owner for the same kind → [ErrFolderNameTaken].
func (f *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, createFolder, folder.UserID, string(folder.Kind), folder.Name, folder.Description, folder.Color)

	created, err := scanFolder(row)
	if err != nil {
		log.Err(err).
			Str("func", "*folderRepository.CreateFolder").
			Int64("user_id", folder.UserID).
			Msg("failed to create folder")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Folder{}, ErrFolderNameTaken
		default:
			return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (f *folderRepository) ListFolders(ctx context.Context, userID int64, kind models.FolderKind) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoldersQuery(ctx, userID, kind)
	if err != nil {
		log.Err(err).
			Str("func", "*folderRepository.ListFolders").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*folderRepository.ListFolders").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to execute query for listing folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			log.Err(err).
				Str("func", "*folderRepository.ListFolders").
				Int64("user_id", userID).
				Msg("failed to scan folder")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*folderRepository.ListFolders").
			Int64("user_id", userID).
			Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

// GetFolder returns [ErrFolderNotFound] for folders that are missing, of the
// other kind, or owned by someone else.
func (f *folderRepository) GetFolder(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, getFolder, userID, string(kind), folderID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*folderRepository.GetFolder").
			Int64("user_id", userID).
			Int64("folder_id", folderID).
			Msg("failed to get folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	folder, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*folderRepository.GetFolder").
			Int64("folder_id", folderID).
			Msg("failed to scan folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

// UpdateFolder renames folder and replaces its description and color.
func (f *folderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, updateFolder, folder.UserID, string(folder.Kind), folder.ID, folder.Name, folder.Description, folder.Color)

	updated, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*folderRepository.UpdateFolder").
			Int64("user_id", folder.UserID).
			Int64("folder_id", folder.ID).
			Msg("failed to update folder")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Folder{}, ErrFolderNameTaken
		default:
			return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return updated, nil
}

// DeleteFolder removes a folder on its own. A folder still referenced by
// portfolio questions fails with [ErrFolderNotEmpty].
func (f *folderRepository) DeleteFolder(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) error {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, deleteFolder, userID, string(kind), folderID)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return ErrFolderNotEmpty
		}

		log.Err(err).
			Str("func", "*folderRepository.DeleteFolder").
			Int64("user_id", userID).
			Int64("folder_id", folderID).
			Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folderAffected(result)
}

// DeleteFolderWithContents deletes the saved questions of a folder and then
// the folder, in one transaction.
func (f *folderRepository) DeleteFolderWithContents(ctx context.Context, userID int64, kind models.FolderKind, folderID int64) error {
	log := logger.FromContext(ctx)

	return f.withTx(ctx, "*folderRepository.DeleteFolderWithContents", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteFolderSavedQuestions, userID, folderID); err != nil {
			log.Err(err).
				Str("func", "*folderRepository.DeleteFolderWithContents").
				Int64("user_id", userID).
				Int64("folder_id", folderID).
				Msg("failed to delete saved questions of folder")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		result, err := tx.ExecContext(ctx, deleteFolder, userID, string(kind), folderID)
		if err != nil {
			log.Err(err).
				Str("func", "*folderRepository.DeleteFolderWithContents").
				Int64("user_id", userID).
				Int64("folder_id", folderID).
				Msg("failed to delete folder")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return folderAffected(result)
	})
}

func folderAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFolderNotFound
	}

	return nil
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		folder models.Folder
		kind   string
	)
	if err := row.Scan(
		&folder.ID,
		&folder.UserID,
		&kind,
		&folder.Name,
		&folder.Description,
		&folder.Color,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	); err != nil {
		return models.Folder{}, err
	}
	folder.Kind = models.FolderKind(kind)

	return folder, nil
}
