// Package couchstore implements the document store client against CouchDB.
//
// Entity sets are fetched with _find selector queries, paged by bookmark
// until exhaustion so callers never see partial results. Each page request
// carries its own timeout and is retried with bounded exponential backoff;
// an exhausted retry budget surfaces as DataSourceUnavailable and aborts
// the run.
package couchstore

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-kivik/kivik/v4"
	kivikcouch "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/schema"
)

// Store is a CouchDB-backed DocumentSource.
type Store struct {
	db         *kivik.DB
	pageSize   int
	timeout    time.Duration
	maxRetries int
}

var _ contract.DocumentSource = &Store{} // Compile-time check

// New connects to the CouchDB server and binds the configured database.
// The connection itself is lazy; the first fetch surfaces connectivity
// problems through the retry path.
func New(cfg *contract.Config) (*Store, error) {
	var opts []kivik.Option
	if cfg.CouchUser != "" {
		opts = append(opts, kivikcouch.BasicAuth(cfg.CouchUser, cfg.CouchPassword))
	}
	client, err := kivik.New("couch", cfg.CouchURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create CouchDB client for %s: %w", cfg.CouchURL, err)
	}
	db := client.DB(cfg.Database)
	if err := db.Err(); err != nil {
		return nil, fmt.Errorf("could not bind database %q: %w", cfg.Database, err)
	}
	return &Store{
		db:         db,
		pageSize:   cfg.PageSize,
		timeout:    cfg.FetchTimeout,
		maxRetries: cfg.MaxRetries,
	}, nil
}

// FetchComponents implements the DocumentSource interface.
func (s *Store) FetchComponents(ctx context.Context) ([]schema.ComponentDoc, error) {
	return fetchAll[schema.ComponentDoc](ctx, s, schema.ComponentEntity)
}

// FetchReleases implements the DocumentSource interface.
func (s *Store) FetchReleases(ctx context.Context) ([]schema.ReleaseDoc, error) {
	return fetchAll[schema.ReleaseDoc](ctx, s, schema.ReleaseEntity)
}

// FetchProjects implements the DocumentSource interface.
func (s *Store) FetchProjects(ctx context.Context) ([]schema.ProjectDoc, error) {
	return fetchAll[schema.ProjectDoc](ctx, s, schema.ProjectEntity)
}

// fetchAll pages through one entity type until the result set is exhausted.
// A short page or an empty bookmark ends the loop.
func fetchAll[T any](ctx context.Context, s *Store, entity schema.EntityType) ([]T, error) {
	var out []T
	bookmark := ""
	for {
		docs, next, err := fetchPage[T](ctx, s, entity, bookmark)
		if err != nil {
			return nil, &contract.DataSourceUnavailableError{Entity: string(entity), Err: err}
		}
		out = append(out, docs...)
		if len(docs) < s.pageSize || next == "" {
			return out, nil
		}
		bookmark = next
	}
}

// fetchPage runs one _find request with retry. Client-side errors (4xx) are
// permanent and fail immediately; connectivity problems and 5xx responses
// retry with exponential backoff up to the configured attempt budget.
func fetchPage[T any](ctx context.Context, s *Store, entity schema.EntityType, bookmark string) ([]T, string, error) {
	var docs []T
	var next string

	op := func() error {
		d, n, err := queryPage[T](ctx, s, entity, bookmark)
		if err != nil {
			if status := kivik.HTTPStatus(err); status >= 400 && status < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		docs, next = d, n
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(s.maxRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		contract.LogWarn(fmt.Sprintf("fetch %s page failed, backing off %s", entity, wait.Round(time.Millisecond)), err)
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, "", err
	}
	return docs, next, nil
}

// queryPage executes a single _find request under the per-call timeout.
func queryPage[T any](ctx context.Context, s *Store, entity schema.EntityType, bookmark string) ([]T, string, error) {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := map[string]any{
		"selector": map[string]any{"type": map[string]any{"$eq": string(entity)}},
		"limit":    s.pageSize,
	}
	if bookmark != "" {
		query["bookmark"] = bookmark
	}

	rows := s.db.Find(pctx, query)
	defer func() { _ = rows.Close() }()

	var docs []T
	for rows.Next() {
		var doc T
		if err := rows.ScanDoc(&doc); err != nil {
			return nil, "", fmt.Errorf("could not decode %s document: %w", entity, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	meta, err := rows.Metadata()
	if err != nil {
		return nil, "", err
	}
	return docs, meta.Bookmark, nil
}
