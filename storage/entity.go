// Package storage provides a catalog of license records backed by NATS KV.
// Records are the detached JSON form of license entities; the graph holds
// the triple projection, the catalog holds the editable source of record.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/spdxkit/licensegraph/license"
)

// BucketLicenses is the default KV bucket holding license records.
// Deployments override it through config (catalog.bucket).
const BucketLicenses = "LICENSEGRAPH_LICENSES"

// Record is the stored form of a license entity. Pointer fields distinguish
// absent optional values from present-but-empty ones, mirroring the entity.
type Record struct {
	LicenseID   string    `json:"license_id"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	Header      *string   `json:"header,omitempty"`
	Template    *string   `json:"template,omitempty"`
	OsiApproved bool      `json:"osi_approved,omitempty"`
	Comment     string    `json:"comment,omitempty"`
	SeeAlso     []string  `json:"see_also,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRecord captures a detached snapshot of a license entity.
func NewRecord(l *license.License) *Record {
	return &Record{
		LicenseID:   l.ID(),
		Name:        l.Name(),
		Text:        l.Text(),
		Header:      l.Header(),
		Template:    l.Template(),
		OsiApproved: l.OsiApproved(),
		Comment:     l.Comment(),
		SeeAlso:     l.SeeAlso(),
	}
}

// License reconstructs the detached entity from the record.
func (r *Record) License() *license.License {
	opts := []license.Option{
		license.WithOsiApproved(r.OsiApproved),
		license.WithComment(r.Comment),
		license.WithSeeAlso(r.SeeAlso...),
	}
	if r.Header != nil {
		opts = append(opts, license.WithHeader(*r.Header))
	}
	if r.Template != nil {
		opts = append(opts, license.WithTemplate(*r.Template))
	}
	return license.New(r.LicenseID, r.Name, r.Text, opts...)
}

// Store provides license catalog operations backed by NATS KV.
type Store struct {
	licenses jetstream.KeyValue
}

// NewStore creates a Store over the named bucket, creating the bucket if it
// does not exist. An empty bucket name falls back to BucketLicenses.
func NewStore(ctx context.Context, js jetstream.JetStream, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = BucketLicenses
	}
	kv, err := getOrCreateBucket(ctx, js, bucket)
	if err != nil {
		return nil, fmt.Errorf("create licenses bucket %s: %w", bucket, err)
	}
	return &Store{licenses: kv}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: "Licensegraph license catalog",
		History:     5, // Keep last 5 revisions
	})
}

// Put creates or updates the record for its license ID. Uniqueness within
// the catalog is enforced here by keying on the ID.
func (s *Store) Put(ctx context.Context, r *Record) error {
	if r.LicenseID == "" {
		return ErrMissingID
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal license record: %w", err)
	}

	if _, err := s.licenses.Put(ctx, kvKey(r.LicenseID), data); err != nil {
		return fmt.Errorf("store license %s: %w", r.LicenseID, err)
	}
	return nil
}

// Get retrieves a record by license ID.
func (s *Store) Get(ctx context.Context, licenseID string) (*Record, error) {
	entry, err := s.licenses.Get(ctx, kvKey(licenseID))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get license %s: %w", licenseID, err)
	}

	var r Record
	if err := json.Unmarshal(entry.Value(), &r); err != nil {
		return nil, fmt.Errorf("unmarshal license %s: %w", licenseID, err)
	}
	return &r, nil
}

// Delete removes a record by license ID.
func (s *Store) Delete(ctx context.Context, licenseID string) error {
	if err := s.licenses.Delete(ctx, kvKey(licenseID)); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete license %s: %w", licenseID, err)
	}
	return nil
}

// List returns all records in the catalog.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	keys, err := s.licenses.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list license keys: %w", err)
	}

	records := make([]*Record, 0, len(keys))
	for _, key := range keys {
		entry, err := s.licenses.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var r Record
		if err := json.Unmarshal(entry.Value(), &r); err != nil {
			continue
		}
		records = append(records, &r)
	}
	return records, nil
}

// kvKey maps a license ID to a KV-safe key. NATS KV keys cannot carry every
// character a license ID can, so unsafe runes fold to underscore.
func kvKey(licenseID string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.' || r == '_':
			return r
		default:
			return '_'
		}
	}, licenseID)
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound)
}
