package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// PayloadKind tags the shape of a completion response.
type PayloadKind int

const (
	// PayloadUnparseable means the text was not a JSON object.
	PayloadUnparseable PayloadKind = iota
	// PayloadMultiOffer means the object carried an "offers" array.
	PayloadMultiOffer
	// PayloadSingleOffer means the object was itself one offer.
	PayloadSingleOffer
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadMultiOffer:
		return "multi_offer"
	case PayloadSingleOffer:
		return "single_offer"
	default:
		return "unparseable"
	}
}

// ParsedPayload is the decoded completion text. Records holds one raw
// record per candidate offer; it is empty for unparseable payloads and for
// objects of neither shape.
type ParsedPayload struct {
	Kind    PayloadKind
	Records []map[string]interface{}
	Err     error
}

var errNotAnObject = errors.New("payload is not a JSON object")

const multiOfferSchema = `{
  "type": "object",
  "required": ["offers"],
  "properties": {"offers": {"type": "array"}}
}`

// A single offer needs a truthy supplier.
const singleOfferSchema = `{
  "type": "object",
  "required": ["fournisseur"],
  "properties": {"fournisseur": {"not": {"enum": [null, false, 0, ""]}}}
}`

var (
	multiOffer  = mustSchema(multiOfferSchema)
	singleOffer = mustSchema(singleOfferSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("extraction: invalid payload schema: %v", err))
	}
	return s
}

// ParsePayload decodes completion text into one of the payload variants.
func ParsePayload(text string) ParsedPayload {
	body := stripCodeFence(text)

	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return ParsedPayload{Kind: PayloadUnparseable, Err: err}
	}
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return ParsedPayload{Kind: PayloadUnparseable, Err: errNotAnObject}
	}

	loader := gojsonschema.NewGoLoader(obj)
	if matches(multiOffer, loader) {
		items, _ := obj["offers"].([]interface{})
		records := make([]map[string]interface{}, 0, len(items))
		for _, item := range items {
			rec, ok := item.(map[string]interface{})
			if !ok {
				rec = map[string]interface{}{}
			}
			records = append(records, rec)
		}
		return ParsedPayload{Kind: PayloadMultiOffer, Records: records}
	}
	if matches(singleOffer, loader) {
		return ParsedPayload{Kind: PayloadSingleOffer, Records: []map[string]interface{}{obj}}
	}
	return ParsedPayload{Kind: PayloadMultiOffer, Records: []map[string]interface{}{}}
}

func matches(schema *gojsonschema.Schema, doc gojsonschema.JSONLoader) bool {
	result, err := schema.Validate(doc)
	if err != nil {
		return false
	}
	return result.Valid()
}

// stripCodeFence removes a surrounding markdown code fence, which some
// providers add even when asked for bare JSON.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
