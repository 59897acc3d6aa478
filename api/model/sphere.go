package model

import "github.com/a-bouts/spherical/latlon"

type Distance struct {
	From     latlon.LatLon `json:"from"`
	To       latlon.LatLon `json:"to"`
	Radius   float64       `json:"radius"`
	Distance float64       `json:"distance"`
}

type Bearing struct {
	From    latlon.LatLon `json:"from"`
	To      latlon.LatLon `json:"to"`
	Bearing float64       `json:"bearing"`
}

type Path struct {
	Distance float64         `json:"distance"`
	Bearing  float64         `json:"bearing"`
	Points   []latlon.LatLon `json:"points"`
}

type Angle struct {
	Value   string  `json:"value"`
	Degrees float64 `json:"degrees"`
	Minutes string  `json:"minutes"`
}

type Error struct {
	Error string `json:"error"`
}
