package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/katalvlaran/boltgroup/server"
)

func ExampleServer_Handler() {
	s := server.New(server.DefaultConfig())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	body := `{
		"points":[{"x":-50,"y":50},{"x":50,"y":50},{"x":-50,"y":-50},{"x":50,"y":-50}],
		"force":[0,0,400]
	}`
	resp, _ := http.Post(ts.URL+"/api/v1/loads", "application/json", strings.NewReader(body))

	var got struct {
		Fasteners []struct {
			Axial float64 `json:"axial"`
		} `json:"fasteners"`
		MaxShear float64 `json:"max_shear"`
	}
	defer resp.Body.Close()
	_ = json.NewDecoder(resp.Body).Decode(&got)

	fmt.Printf("status %d\n", resp.StatusCode)
	fmt.Printf("axial on bolt 1: %g\n", got.Fasteners[0].Axial)
	// Output:
	// status 200
	// axial on bolt 1: 100
}
