package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/units"
)

// pointJSON is an (x, y) pair on the wire.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// unitsJSON names a unit system by its symbols.
type unitsJSON struct {
	Length string `json:"length"`
	Force  string `json:"force"`
}

// geometryRequest carries the layout fields shared by both endpoints:
// the point set, an area assignment, and the optional pivot and units.
type geometryRequest struct {
	Points      []pointJSON `json:"points"`
	UniformArea *float64    `json:"uniform_area,omitempty"`
	Areas       []float64   `json:"areas,omitempty"`
	Pivot       *pointJSON  `json:"pivot,omitempty"`
	Units       *unitsJSON  `json:"units,omitempty"`
}

// loadsRequest adds the applied resultant to the layout.
type loadsRequest struct {
	geometryRequest
	Force  [3]float64 `json:"force"`
	Moment [3]float64 `json:"moment"`
}

// patternResponse summarizes the resolved geometry.
type patternResponse struct {
	Fasteners int       `json:"fasteners"`
	Pivot     pointJSON `json:"pivot"`
	TotalArea float64   `json:"total_area"`
	Icx       float64   `json:"icx"`
	Icy       float64   `json:"icy"`
	Icp       float64   `json:"icp"`
	Units     unitsJSON `json:"units"`
}

// fastenerJSON is one row of a distributed case.
type fastenerJSON struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Axial    float64 `json:"axial"`
	ShearX   float64 `json:"shear_x"`
	ShearY   float64 `json:"shear_y"`
	ShearMag float64 `json:"shear"`
}

// loadsResponse is the distributed case, index-aligned with the posted
// points.
type loadsResponse struct {
	Fasteners []fastenerJSON `json:"fasteners"`
	MaxShear  float64        `json:"max_shear"`
	Units     unitsJSON      `json:"units"`
}

// resolve converts the wire layout into engine inputs. Value validation
// stays with the engine; only the unit symbols are parsed here.
func (g geometryRequest) resolve() ([]geom.Point, []group.Option, error) {
	var opts []group.Option
	if g.Units != nil {
		sys, err := units.Parse(g.Units.Length, g.Units.Force)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, group.WithUnits(sys))
	}
	switch {
	case len(g.Areas) > 0:
		opts = append(opts, group.WithAreas(g.Areas))
	case g.UniformArea != nil:
		opts = append(opts, group.WithUniformArea(*g.UniformArea))
	}
	if g.Pivot != nil {
		opts = append(opts, group.WithPivot(geom.Pt(g.Pivot.X, g.Pivot.Y)))
	}

	pts := make([]geom.Point, len(g.Points))
	for i, p := range g.Points {
		pts[i] = geom.Pt(p.X, p.Y)
	}
	return pts, opts, nil
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	var req geometryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	pts, opts, err := req.resolve()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	geo, err := group.ComputeGeometry(pts, opts...)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, patternResponse{
		Fasteners: len(geo.Points),
		Pivot:     pointJSON{X: geo.Pivot.X, Y: geo.Pivot.Y},
		TotalArea: geo.TotalArea,
		Icx:       geo.Icx,
		Icy:       geo.Icy,
		Icp:       geo.Icp,
		Units:     symbolsOf(geo.Units),
	})
}

func (s *Server) handleLoads(w http.ResponseWriter, r *http.Request) {
	var req loadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	pts, opts, err := req.resolve()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	set, err := group.AnalyzeLoads(pts, group.Resultant{
		Force:  geom.V3(req.Force[0], req.Force[1], req.Force[2]),
		Moment: geom.V3(req.Moment[0], req.Moment[1], req.Moment[2]),
	}, opts...)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	out := loadsResponse{
		Fasteners: make([]fastenerJSON, len(set.Fasteners)),
		MaxShear:  set.MaxShear,
		Units:     symbolsOf(set.Geometry.Units),
	}
	for i, f := range set.Fasteners {
		out.Fasteners[i] = fastenerJSON{
			X:        f.Position.X,
			Y:        f.Position.Y,
			Axial:    f.Axial,
			ShearX:   f.Shear.X,
			ShearY:   f.Shear.Y,
			ShearMag: f.ShearMag,
		}
	}
	writeJSON(w, out)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// statusFor maps analysis failures to HTTP codes: argument problems are
// 400; a layout that parsed but cannot carry the posted moment is 422.
func statusFor(err error) int {
	if errors.Is(err, group.ErrDegenerateAxis) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func symbolsOf(sys units.System) unitsJSON {
	return unitsJSON{Length: sys.Length.Symbol(), Force: sys.Force.Symbol()}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
