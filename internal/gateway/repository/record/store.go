package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound is returned when a persona, document or comment does not
// exist.
var ErrNotFound = errors.New("record: not found")

type Store struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS personas (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT '',
  interests JSONB NOT NULL DEFAULT '[]',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS documents (
  id BIGSERIAL PRIMARY KEY,
  document_id TEXT UNIQUE NOT NULL,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  agency_id TEXT NOT NULL DEFAULT '',
  document_type TEXT NOT NULL DEFAULT '',
  web_comment_link TEXT NOT NULL DEFAULT '',
  web_document_link TEXT NOT NULL DEFAULT '',
  web_docket_link TEXT NOT NULL DEFAULT '',
  docket_id TEXT NOT NULL DEFAULT '',
  posted_date TIMESTAMP WITH TIME ZONE,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
  id BIGSERIAL PRIMARY KEY,
  persona_id BIGINT REFERENCES personas (id),
  document_id TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'draft',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_document_id ON comments (document_id);
`)
	})
	return s.schemaErr
}

func (s *Store) CreatePersona(ctx context.Context, p Persona) (Persona, error) {
	if err := s.ensureSchema(); err != nil {
		return Persona{}, err
	}
	if strings.TrimSpace(p.Name) == "" {
		return Persona{}, fmt.Errorf("record: persona name is required")
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	interests, _ := json.Marshal(p.Interests)
	row := s.db.QueryRowContext(ctx, `
INSERT INTO personas (name, role, interests)
VALUES ($1, $2, $3)
RETURNING id, created_at`, p.Name, p.Role, interests)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return Persona{}, err
	}
	return p, nil
}

func (s *Store) GetPersona(ctx context.Context, id int64) (Persona, error) {
	if err := s.ensureSchema(); err != nil {
		return Persona{}, err
	}
	var (
		p         Persona
		interests []byte
	)
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, role, interests, created_at FROM personas WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Role, &interests, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Persona{}, ErrNotFound
		}
		return Persona{}, err
	}
	if err := json.Unmarshal(interests, &p.Interests); err != nil {
		p.Interests = []string{}
	}
	return p, nil
}

func (s *Store) ListDocuments(ctx context.Context, limit, offset int) ([]Document, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, document_id, title, content, agency_id, document_type,
  web_comment_link, web_document_link, web_docket_link, docket_id,
  posted_date, created_at
FROM documents
ORDER BY posted_date DESC NULLS LAST
LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Document, 0, limit)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDocument(ctx context.Context, documentID string) (Document, error) {
	if err := s.ensureSchema(); err != nil {
		return Document{}, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT id, document_id, title, content, agency_id, document_type,
  web_comment_link, web_document_link, web_docket_link, docket_id,
  posted_date, created_at
FROM documents WHERE document_id = $1`, strings.TrimSpace(documentID))
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return d, err
}

// UpsertDocuments inserts or refreshes a batch of documents keyed by
// their regulations.gov document ID. It returns the number written.
func (s *Store) UpsertDocuments(ctx context.Context, docs []Document) (int, error) {
	if err := s.ensureSchema(); err != nil {
		return 0, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	n := 0
	for _, d := range docs {
		if strings.TrimSpace(d.DocumentID) == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO documents (
  document_id, title, content, agency_id, document_type,
  web_comment_link, web_document_link, web_docket_link, docket_id, posted_date
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (document_id)
DO UPDATE SET title=EXCLUDED.title,
  content=EXCLUDED.content,
  agency_id=EXCLUDED.agency_id,
  document_type=EXCLUDED.document_type,
  web_comment_link=EXCLUDED.web_comment_link,
  web_document_link=EXCLUDED.web_document_link,
  web_docket_link=EXCLUDED.web_docket_link,
  docket_id=EXCLUDED.docket_id,
  posted_date=EXCLUDED.posted_date`,
			d.DocumentID, d.Title, d.Content, d.AgencyID, d.DocumentType,
			d.WebCommentLink, d.WebDocumentLink, d.WebDocketLink, d.DocketID, d.PostedDate)
		if err != nil {
			return 0, err
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) ClearDocuments(ctx context.Context) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents`)
	return err
}

func (s *Store) CreateComment(ctx context.Context, c Comment) (Comment, error) {
	if err := s.ensureSchema(); err != nil {
		return Comment{}, err
	}
	if strings.TrimSpace(c.DocumentID) == "" || strings.TrimSpace(c.Content) == "" {
		return Comment{}, fmt.Errorf("record: comment document_id and content are required")
	}
	if c.Status == "" {
		c.Status = StatusDraft
	}
	row := s.db.QueryRowContext(ctx, `
INSERT INTO comments (persona_id, document_id, title, content, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`,
		c.PersonaID, c.DocumentID, c.Title, c.Content, c.Status)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (Comment, error) {
	if err := s.ensureSchema(); err != nil {
		return Comment{}, err
	}
	var c Comment
	row := s.db.QueryRowContext(ctx, `
SELECT id, COALESCE(persona_id, 0), document_id, title, content, status, created_at
FROM comments WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.PersonaID, &c.DocumentID, &c.Title, &c.Content, &c.Status, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var d Document
	err := row.Scan(
		&d.ID, &d.DocumentID, &d.Title, &d.Content, &d.AgencyID, &d.DocumentType,
		&d.WebCommentLink, &d.WebDocumentLink, &d.WebDocketLink, &d.DocketID,
		&d.PostedDate, &d.CreatedAt,
	)
	return d, err
}
