package blitz

import (
	"github.com/beevik/etree"

	"github.com/ciss-tools/scenediagram/pkg/core"
)

// Item type attribute values.
const (
	ItemGosModel  = "gosmodel"
	ItemLabel     = "label"
	ItemPolyCurve = "poly-curve"

	labelTextPath = "text[@type='textp']"
)

func (l *Layer) items(itemType string) []*etree.Element {
	return l.elem.FindElements("./items/item[@type='" + itemType + "']")
}

// GetVehicles returns the layer's gosmodel items in document order. With
// onlyNamed, items whose name attribute is the empty string are skipped;
// whitespace-only names count as named.
func (r *Reader) GetVehicles(layerName string, onlyNamed bool) ([]core.GosModel, error) {
	layer, err := r.ReadLayer(layerName)
	if err != nil {
		return nil, err
	}
	return layer.vehicles(r, onlyNamed)
}

// GetLabels returns the layer's label items in document order.
func (r *Reader) GetLabels(layerName string) ([]core.Label, error) {
	layer, err := r.ReadLayer(layerName)
	if err != nil {
		return nil, err
	}
	return layer.labels(r)
}

// GetCurves returns the layer's poly-curve items in document order. A curve
// without points is returned as is.
func (r *Reader) GetCurves(layerName string) ([]core.PolyCurve, error) {
	layer, err := r.ReadLayer(layerName)
	if err != nil {
		return nil, err
	}
	return layer.curves(r)
}

func (l *Layer) vehicles(r *Reader, onlyNamed bool) ([]core.GosModel, error) {
	elems := l.items(ItemGosModel)
	vehicles := make([]core.GosModel, 0, len(elems))
	skipped := 0
	for _, e := range elems {
		a := attrs{path: l.path, elem: e}

		name, err := a.str("name")
		if err != nil {
			return nil, err
		}
		if onlyNamed && name == "" {
			skipped++
			continue
		}

		dmgIdx, err := a.int("dmgIdx")
		if err != nil {
			return nil, err
		}
		v, err := a.floats("t", "pX", "pY", "sX", "sY", "bsX", "bsY")
		if err != nil {
			return nil, err
		}

		vehicles = append(vehicles, core.GosModel{
			Name:   name,
			DmgIdx: dmgIdx,
			T:      v[0],
			PX:     v[1],
			PY:     v[2],
			SX:     v[3],
			SY:     v[4],
			BsX:    v[5],
			BsY:    v[6],
		})
	}

	r.logger.Debug("Parsed vehicles",
		"layer", l.name,
		"count", len(vehicles),
		"skippedUnnamed", skipped)

	return vehicles, nil
}

func (l *Layer) labels(r *Reader) ([]core.Label, error) {
	elems := l.items(ItemLabel)
	labels := make([]core.Label, 0, len(elems))
	for _, e := range elems {
		a := attrs{path: l.path, elem: e}

		v, err := a.floats("posX", "posY", "sX", "sY", "theta")
		if err != nil {
			return nil, err
		}

		textp := e.FindElement("./" + labelTextPath)
		if textp == nil {
			return nil, &StructureError{Path: l.path, Element: pathLayer + "/items/item/" + labelTextPath}
		}
		text, err := attrs{path: l.path, elem: textp}.str("txt")
		if err != nil {
			return nil, err
		}

		labels = append(labels, core.Label{
			PosX:  v[0],
			PosY:  v[1],
			SX:    v[2],
			SY:    v[3],
			Theta: v[4],
			Text:  text,
		})
	}

	r.logger.Debug("Parsed labels", "layer", l.name, "count", len(labels))

	return labels, nil
}

func (l *Layer) curves(r *Reader) ([]core.PolyCurve, error) {
	elems := l.items(ItemPolyCurve)
	curves := make([]core.PolyCurve, 0, len(elems))
	points := 0
	for _, e := range elems {
		pnts := e.SelectElements("pnt")
		coords := make([]core.Position2D, 0, len(pnts))
		for _, p := range pnts {
			xy, err := attrs{path: l.path, elem: p}.floats("X", "Y")
			if err != nil {
				return nil, err
			}
			coords = append(coords, core.Position2D{X: xy[0], Y: xy[1]})
		}
		points += len(coords)

		curves = append(curves, core.NewPolyCurve(coords, attrs{path: l.path, elem: e}.all()))
	}

	r.logger.Debug("Parsed curves", "layer", l.name, "count", len(curves), "points", points)

	return curves, nil
}
