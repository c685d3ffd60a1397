package blitz

import "github.com/ciss-tools/scenediagram/pkg/core"

// Scene is everything read from one layer plus the document metadata.
type Scene struct {
	Layer    string            `json:"layer"`
	Metadata map[string]string `json:"metadata"`
	Vehicles []core.GosModel   `json:"vehicles"`
	Labels   []core.Label      `json:"labels"`
	Curves   []core.PolyCurve  `json:"curves"`
}

// ReadScene reads metadata, vehicles, labels and curves of one layer. Any
// failure discards the whole result.
func (r *Reader) ReadScene(layerName string, onlyNamed bool) (Scene, error) {
	meta, err := r.ReadMetadata()
	if err != nil {
		return Scene{}, err
	}
	layer, err := r.ReadLayer(layerName)
	if err != nil {
		return Scene{}, err
	}

	vehicles, err := layer.vehicles(r, onlyNamed)
	if err != nil {
		return Scene{}, err
	}
	labels, err := layer.labels(r)
	if err != nil {
		return Scene{}, err
	}
	curves, err := layer.curves(r)
	if err != nil {
		return Scene{}, err
	}

	return Scene{
		Layer:    layer.Name(),
		Metadata: meta,
		Vehicles: vehicles,
		Labels:   labels,
		Curves:   curves,
	}, nil
}

// Scale returns a copy with every record scaled by factor. Metadata is
// shared.
func (s Scene) Scale(factor float64) Scene {
	out := Scene{
		Layer:    s.Layer,
		Metadata: s.Metadata,
		Vehicles: make([]core.GosModel, len(s.Vehicles)),
		Labels:   make([]core.Label, len(s.Labels)),
		Curves:   make([]core.PolyCurve, len(s.Curves)),
	}
	for i, v := range s.Vehicles {
		out.Vehicles[i] = v.Scale(factor)
	}
	for i, l := range s.Labels {
		out.Labels[i] = l.Scale(factor)
	}
	for i, c := range s.Curves {
		out.Curves[i] = c.Scale(factor)
	}
	return out
}
