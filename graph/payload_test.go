package graph

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicensePayload_RegistryRoundTrip(t *testing.T) {
	entityID := LicenseEntityID("MIT")
	src := NewLicensePayload(entityID, []message.Triple{
		{Subject: entityID, Predicate: "license.meta.id", Object: "MIT", Timestamp: time.Now()},
		{Subject: entityID, Predicate: "license.std.osiApproved", Object: "true", Timestamp: time.Now()},
	})

	data, err := json.Marshal(src)
	require.NoError(t, err)

	// The registered factory is what stream consumers use to recover a
	// typed payload from the wire format.
	created := PayloadRegistry.Create("license", "entity", "v1")
	require.NotNil(t, created, "license.entity.v1 must be registered")
	decoded, ok := created.(*LicensePayload)
	require.True(t, ok)

	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, entityID, decoded.EntityID())
	require.Len(t, decoded.Triples(), 2)
	assert.Equal(t, "license.meta.id", decoded.Triples()[0].Predicate)
	assert.Equal(t, LicenseEntityType, decoded.Schema())
}

func TestLicensePayload_Validate(t *testing.T) {
	entityID := LicenseEntityID("MIT")

	tests := []struct {
		name    string
		payload *LicensePayload
		wantErr string
	}{
		{
			"valid",
			NewLicensePayload(entityID, []message.Triple{
				{Subject: entityID, Predicate: "license.meta.id", Object: "MIT"},
			}),
			"",
		},
		{
			"empty triple set is valid",
			NewLicensePayload(entityID, nil),
			"",
		},
		{
			"missing entity ID",
			NewLicensePayload("", nil),
			"entity ID is required",
		},
		{
			"triple missing predicate",
			NewLicensePayload(entityID, []message.Triple{
				{Subject: entityID, Object: "MIT"},
			}),
			"predicate is required",
		},
		{
			"triple about another entity",
			NewLicensePayload(entityID, []message.Triple{
				{Subject: "somewhere.else", Predicate: "license.meta.id", Object: "MIT"},
			}),
			"does not match entity",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLicenseEntityID(t *testing.T) {
	assert.Equal(t, "licensegraph.local.licensing.catalog.license.MIT", LicenseEntityID("MIT"))
}
