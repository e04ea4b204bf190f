package cargoapi

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cargoportl/cargoportl"
)

// The cargo server is loosely specified about mutation responses: a create
// or update acknowledges with at least the shipment, sometimes the whole
// composite, and a delete acknowledges with something containing the
// shipment id. This file digs the useful parts out of whatever came back,
// falling back to what was sent.

// extractEntry merges the server's mutation response into the entry that
// was sent. Sections present in the response win; absent sections keep the
// submitted values.
func extractEntry(body []byte, sent cargoportl.FullEntry) (cargoportl.FullEntry, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return cargoportl.FullEntry{}, fmt.Errorf("cannot decode mutation response: %w", err)
	}

	entry := sent

	if section(jobj, "$.shipment", &entry.Shipment) {
		// composite response, pick up the other sections too
		section(jobj, "$.client", &entry.Client)
		section(jobj, "$.invoice", &entry.Invoice)
		return entry, nil
	}

	// bare response: the whole body is the created shipment
	var shipment cargoportl.Shipment
	if err := reencode(jobj, &shipment); err == nil && !shipment.ID.IsZero() {
		entry.Shipment = shipment
	}
	return entry, nil
}

// extractDeletedID finds the acknowledged shipment id in a delete
// response, or falls back to the id that was requested.
func extractDeletedID(body []byte, requested cargoportl.ID) cargoportl.ID {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return requested
	}
	jval, err := jsonpath.Get("$.shipmentId", jobj)
	if err != nil {
		// maybe the body is the bare id
		jval = jobj
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	var id cargoportl.ID
	if err := reencode(jval, &id); err != nil || id.IsZero() {
		return requested
	}
	return id
}

// section extracts one jsonpath section of the response into dst.
// It reports whether the section was present and decodable.
func section(jobj any, path string, dst any) bool {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil || jval == nil {
		return false
	}
	return reencode(jval, dst) == nil
}

// reencode round-trips a decoded JSON value into a typed destination.
func reencode(v any, dst any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
