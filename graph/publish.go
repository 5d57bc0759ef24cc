package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/google/uuid"
)

// IngestSubject is the default stream subject for license entity ingestion.
const IngestSubject = "graph.ingest.license"

// PublishEntity publishes a projected entity to the knowledge graph stream
// as a LicensePayload. A nil client skips publishing so callers without a
// broker can degrade gracefully; an empty subject falls back to
// IngestSubject.
//
// Every triple in the batch is stamped with the same correlation context so
// downstream consumers can group the assertions from this projection.
func PublishEntity(ctx context.Context, nc *natsclient.Client, subject, entityID string, triples []message.Triple) error {
	if nc == nil {
		return nil
	}
	if subject == "" {
		subject = IngestSubject
	}

	now := time.Now()
	batch := uuid.New().String()
	stamped := make([]message.Triple, len(triples))
	for i, t := range triples {
		if t.Timestamp.IsZero() {
			t.Timestamp = now
		}
		if t.Context == "" {
			t.Context = batch
		}
		stamped[i] = t
	}

	payload := NewLicensePayload(entityID, stamped)
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("validate license entity: %w", err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal license entity: %w", err)
	}

	if err := nc.PublishToStream(ctx, subject, data); err != nil {
		return fmt.Errorf("publish license entity: %w", err)
	}

	return nil
}

// LicenseEntityID generates a consistent graph entity ID for a license.
// Format follows the six-part convention: org.platform.domain.system.type.instance.
func LicenseEntityID(licenseID string) string {
	return fmt.Sprintf("licensegraph.local.licensing.catalog.license.%s", licenseID)
}
