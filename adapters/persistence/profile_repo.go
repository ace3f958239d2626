package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

// profileRowID pins the table to one row; the schema backs it with a
// CHECK (id = 1) constraint, so concurrent inserts cannot both land.
const profileRowID = 1

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query, args, err := psqlProfile.
		Select("record_id", "name", "email", "education", "skills", "projects", "work", "links", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"id": profileRowID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	p := &profile.Profile{}
	var educationBytes, skillsBytes, projectsBytes, workBytes, linksBytes []byte

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&educationBytes,
		&skillsBytes,
		&projectsBytes,
		&workBytes,
		&linksBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	r.unmarshalColumn(educationBytes, &p.Education, "education")
	r.unmarshalColumn(skillsBytes, &p.Skills, "skills")
	r.unmarshalColumn(projectsBytes, &p.Projects, "projects")
	r.unmarshalColumn(workBytes, &p.Work, "work")
	if len(linksBytes) > 0 {
		r.unmarshalColumn(linksBytes, &p.Links, "links")
	}
	p.Normalize()

	return p, nil
}

func (r *postgresProfileRepo) unmarshalColumn(data []byte, dst any, column string) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn("Failed to unmarshal profile column", zap.String("column", column), zap.Error(err))
	}
}

func (r *postgresProfileRepo) Insert(ctx context.Context, p *profile.Profile) error {
	values, err := marshalProfileColumns(p)
	if err != nil {
		return err
	}

	query, args, err := psqlProfile.
		Insert("profiles").
		Columns("id", "record_id", "name", "email", "education", "skills", "projects", "work", "links", "created_at", "updated_at").
		Values(profileRowID, p.ID, p.Name, p.Email,
			values.education, values.skills, values.projects, values.work, values.links,
			p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("Profile already exists. Use PUT to update.")
		}
		return apperror.NewInternal("failed to insert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Replace(ctx context.Context, p *profile.Profile) error {
	values, err := marshalProfileColumns(p)
	if err != nil {
		return err
	}

	// Full-row upsert keeps the write atomic: readers either see the old
	// record or the new one, never a mix.
	query, args, err := psqlProfile.
		Insert("profiles").
		Columns("id", "record_id", "name", "email", "education", "skills", "projects", "work", "links", "created_at", "updated_at").
		Values(profileRowID, p.ID, p.Name, p.Email,
			values.education, values.skills, values.projects, values.work, values.links,
			p.CreatedAt, p.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			work = EXCLUDED.work,
			links = EXCLUDED.links,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to replace profile", err)
	}
	return nil
}

type profileColumns struct {
	education []byte
	skills    []byte
	projects  []byte
	work      []byte
	links     []byte
}

func marshalProfileColumns(p *profile.Profile) (profileColumns, error) {
	var c profileColumns
	var err error

	if c.education, err = json.Marshal(p.Education); err != nil {
		return c, apperror.NewInternal("failed to marshal education", err)
	}
	if c.skills, err = json.Marshal(p.Skills); err != nil {
		return c, apperror.NewInternal("failed to marshal skills", err)
	}
	if c.projects, err = json.Marshal(p.Projects); err != nil {
		return c, apperror.NewInternal("failed to marshal projects", err)
	}
	if c.work, err = json.Marshal(p.Work); err != nil {
		return c, apperror.NewInternal("failed to marshal work", err)
	}
	if p.Links != nil {
		if c.links, err = json.Marshal(p.Links); err != nil {
			return c, apperror.NewInternal("failed to marshal links", err)
		}
	}
	return c, nil
}
