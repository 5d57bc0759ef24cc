package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/payloadregistry"
)

// PayloadRegistry holds this package's payload registrations. Stream
// consumers use it to recover typed payloads from the wire format.
var PayloadRegistry = payloadregistry.New()

func init() {
	err := PayloadRegistry.Register(&payloadregistry.Registration{
		Domain:      "license",
		Category:    "entity",
		Version:     "v1",
		Description: "License entity payload for graph ingestion with triples",
		Factory:     func() any { return &LicensePayload{} },
	})
	if err != nil {
		panic("failed to register LicensePayload: " + err.Error())
	}
}

// LicenseEntityType is the message type for license entity payloads.
var LicenseEntityType = message.Type{Domain: "license", Category: "entity", Version: "v1"}

// LicensePayload implements message.Payload for license entity ingestion.
// It is the wire format PublishEntity puts on the ingest stream: the license
// entity ID plus the full replacement triple set for that entity.
type LicensePayload struct {
	EntityID_  string           `json:"id"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewLicensePayload builds a payload carrying the full replacement triple
// set for one license entity.
func NewLicensePayload(entityID string, triples []message.Triple) *LicensePayload {
	return &LicensePayload{
		EntityID_:  entityID,
		TripleData: triples,
		UpdatedAt:  time.Now(),
	}
}

func (p *LicensePayload) EntityID() string          { return p.EntityID_ }
func (p *LicensePayload) Triples() []message.Triple { return p.TripleData }
func (p *LicensePayload) Schema() message.Type      { return LicenseEntityType }

// Validate enforces the ingest contract: a payload names its entity and every
// triple it carries asserts something about that entity, nothing else.
func (p *LicensePayload) Validate() error {
	if p.EntityID_ == "" {
		return errors.New("entity ID is required")
	}
	for i, t := range p.TripleData {
		if t.Predicate == "" {
			return fmt.Errorf("triple %d: predicate is required", i)
		}
		if t.Subject != p.EntityID_ {
			return fmt.Errorf("triple %d: subject %q does not match entity %q", i, t.Subject, p.EntityID_)
		}
	}
	return nil
}

func (p *LicensePayload) MarshalJSON() ([]byte, error) {
	type Alias LicensePayload
	return json.Marshal((*Alias)(p))
}

func (p *LicensePayload) UnmarshalJSON(data []byte) error {
	type Alias LicensePayload
	return json.Unmarshal(data, (*Alias)(p))
}
