//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

const fixtureKey = "e2e-key"

// fixtureURL is the base url of the fixture server, set by TestMain
var fixtureURL string

const parisPayload = `{
  "location": {"name": "Paris", "region": "Ile-de-France", "country": "France"},
  "current": {
    "last_updated": "2024-11-30 14:15",
    "temp_c": 21.4,
    "feelslike_c": 20.6,
    "condition": {"text": "Partly cloudy", "icon": "//cdn.example/icon.png"},
    "vis_km": 10,
    "humidity": 64,
    "wind_kph": 13.7,
    "wind_dir": "WSW",
    "pressure_mb": 1018,
    "uv": 2.5,
    "cloud": 50,
    "precip_mm": 0.12,
    "dewpoint_c": 14.3
  }
}`

// brokenPayload lacks current.humidity
const brokenPayload = `{
  "location": {"name": "Broken", "region": "", "country": "Nowhere"},
  "current": {
    "last_updated": "2024-11-30 14:15",
    "temp_c": 1,
    "feelslike_c": 1,
    "condition": {"text": "Mist", "icon": "//cdn.example/mist.png"},
    "vis_km": 1,
    "wind_kph": 1,
    "wind_dir": "N",
    "pressure_mb": 1000,
    "uv": 0,
    "cloud": 100,
    "precip_mm": 0,
    "dewpoint_c": 0
  }
}`

// startFixtureServer serves /current.json for a few known queries
func startFixtureServer() func() {
	mux := http.NewServeMux()
	mux.HandleFunc("/current.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("key") != fixtureKey {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"code":2006,"message":"API key is invalid."}}`)
			return
		}
		switch r.URL.Query().Get("q") {
		case "Paris":
			fmt.Fprint(w, parisPayload)
		case "Broken":
			fmt.Fprint(w, brokenPayload)
		case "Outage":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"code":9999,"message":"Internal application error."}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"code":1006,"message":"No matching location found."}}`)
		}
	})

	srv := httptest.NewServer(mux)
	fixtureURL = srv.URL
	return srv.Close
}
