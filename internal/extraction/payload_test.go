package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/extraction"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantKind    extraction.PayloadKind
		wantRecords int
	}{
		{"multi offer", `{"offers":[{"fournisseur":"ENGIE"},{"fournisseur":"EDF"}]}`, extraction.PayloadMultiOffer, 2},
		{"empty offers", `{"offers":[]}`, extraction.PayloadMultiOffer, 0},
		{"single offer", `{"fournisseur":"ENGIE","prixMolecule":35}`, extraction.PayloadSingleOffer, 1},
		{"offers not an array falls back to single", `{"offers":"none","fournisseur":"EDF"}`, extraction.PayloadSingleOffer, 1},
		{"empty supplier", `{"fournisseur":""}`, extraction.PayloadMultiOffer, 0},
		{"zero supplier", `{"fournisseur":0}`, extraction.PayloadMultiOffer, 0},
		{"null supplier", `{"fournisseur":null}`, extraction.PayloadMultiOffer, 0},
		{"neither shape", `{"foo":1}`, extraction.PayloadMultiOffer, 0},
		{"fenced json", "```json\n{\"offers\":[{\"fournisseur\":\"ENI\"}]}\n```", extraction.PayloadMultiOffer, 1},
		{"invalid json", `{"offers": [`, extraction.PayloadUnparseable, 0},
		{"prose", "Voici les offres extraites.", extraction.PayloadUnparseable, 0},
		{"top level array", `[{"fournisseur":"ENGIE"}]`, extraction.PayloadUnparseable, 0},
		{"null", `null`, extraction.PayloadUnparseable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.ParsePayload(tt.text)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Len(t, got.Records, tt.wantRecords)
			if tt.wantKind == extraction.PayloadUnparseable {
				assert.Error(t, got.Err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestParsePayload_NonObjectElementsBecomeEmptyRecords(t *testing.T) {
	got := extraction.ParsePayload(`{"offers":[1,"x",{"fournisseur":"ENGIE"}]}`)

	require.Equal(t, extraction.PayloadMultiOffer, got.Kind)
	require.Len(t, got.Records, 3)
	assert.Empty(t, got.Records[0])
	assert.Empty(t, got.Records[1])
	assert.Equal(t, "ENGIE", got.Records[2]["fournisseur"])
}

func TestParsePayload_NullOfferEntryKeepsSiblings(t *testing.T) {
	got := extraction.ParsePayload(`{"offers":[null,{"fournisseur":"EDF"}]}`)

	require.Equal(t, extraction.PayloadMultiOffer, got.Kind)
	require.NoError(t, got.Err)
	require.Len(t, got.Records, 2)
	assert.Empty(t, got.Records[0])
	assert.Equal(t, "EDF", got.Records[1]["fournisseur"])
}

func TestPayloadKind_String(t *testing.T) {
	assert.Equal(t, "multi_offer", extraction.PayloadMultiOffer.String())
	assert.Equal(t, "single_offer", extraction.PayloadSingleOffer.String())
	assert.Equal(t, "unparseable", extraction.PayloadUnparseable.String())
}
