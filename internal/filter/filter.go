package filter

import "github.com/VISHALVISHAL29/Dashboard/internal/model"

// Apply returns the records whose description matches one of q.Descriptions
// (case-insensitive, trimmed) and whose date lies in [q.Start, q.End].
// Input order is preserved. An empty result is not an error.
func Apply(records []model.Record, q model.Query) []model.Record {
	want := make(map[string]struct{}, len(q.Descriptions))
	for _, d := range q.Descriptions {
		want[model.ItemKey(d)] = struct{}{}
	}

	var out []model.Record
	for _, r := range records {
		if _, ok := want[r.Key()]; !ok {
			continue
		}
		if !q.InRange(r.Date) {
			continue
		}
		out = append(out, r)
	}
	return out
}
