package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/spherical/angle"
	"github.com/a-bouts/spherical/api/model"
	"github.com/a-bouts/spherical/latlon"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
)

const maxPathPoints = 10000

type Config struct {
	// Digits is the number of decimals kept in responses.
	Digits int
	// Radius is the sphere radius used when a request gives none.
	Radius float64
	// CPUProfile writes a cpu profile of every path request to ProfilePath.
	CPUProfile  bool
	ProfilePath string
}

type server struct {
	digits      int
	radius      float64
	cpuprofile  bool
	profilePath string
	profiling   sync.Mutex
}

func InitServer(c Config) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := &server{
		digits:      c.Digits,
		radius:      c.Radius,
		cpuprofile:  c.CPUProfile,
		profilePath: c.ProfilePath,
	}
	if s.radius <= 0 {
		s.radius = latlon.EarthRadius
	}
	if s.digits < 0 {
		s.digits = angle.DefaultDigits
	}

	apiV1 := router.PathPrefix("/sphere/api/v1").Subrouter()
	apiV1.HandleFunc("/-/healthz", s.healthz).Methods(http.MethodGet)
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodGet)
	apiV1.HandleFunc("/bearing", s.bearing).Methods(http.MethodGet)
	apiV1.HandleFunc("/destination", s.destination).Methods(http.MethodGet)
	apiV1.HandleFunc("/interpolate", s.interpolate).Methods(http.MethodGet)
	apiV1.HandleFunc("/path", s.path).Methods(http.MethodGet)
	apiV1.HandleFunc("/angle", s.angle).Methods(http.MethodGet)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, newRequestLogger("healthz", r), health{Status: "Ok"})
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("distance", req)

	q := query{values: req.URL.Query()}
	from := q.point("lat1", "lon1")
	to := q.point("lat2", "lon2")
	radius := q.radius(s.radius)
	if q.err != nil {
		badRequest(w, requestLogger, q.err)
		return
	}

	d := latlon.Sphere{Radius: radius}.DistanceTo(from, to)
	requestLogger.Debugf("Distance (%f,%f) -> (%f,%f) : %f", from.Lat, from.Lon, to.Lat, to.Lon, d)

	writeJSON(w, requestLogger, model.Distance{
		From:     from,
		To:       to,
		Radius:   radius,
		Distance: angle.Round(d, s.digits),
	})
}

func (s *server) bearing(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("bearing", req)

	q := query{values: req.URL.Query()}
	from := q.point("lat1", "lon1")
	to := q.point("lat2", "lon2")
	if q.err != nil {
		badRequest(w, requestLogger, q.err)
		return
	}

	b := latlon.Bearing(from.Lat, from.Lon, to.Lat, to.Lon)
	requestLogger.Debugf("Bearing (%f,%f) -> (%f,%f) : %f", from.Lat, from.Lon, to.Lat, to.Lon, b)

	writeJSON(w, requestLogger, model.Bearing{
		From:    from,
		To:      to,
		Bearing: angle.Round(b, s.digits),
	})
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("destination", req)

	q := query{values: req.URL.Query()}
	from := q.point("lat", "lon")
	bearing := q.float("bearing")
	distance := q.float("distance")
	radius := q.radius(s.radius)
	normalize := q.optionalBool("normalize")
	if q.err != nil {
		badRequest(w, requestLogger, q.err)
		return
	}

	to := latlon.Sphere{Radius: radius}.Destination(from, bearing, distance)

	writeJSON(w, requestLogger, s.round(to, normalize))
}

func (s *server) interpolate(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("interpolate", req)

	q := query{values: req.URL.Query()}
	from := q.point("lat1", "lon1")
	to := q.point("lat2", "lon2")
	t := q.float("t")
	normalize := q.optionalBool("normalize")
	if q.err == nil && (t < 0 || t > 1) {
		q.err = fmt.Errorf("t must be within [0, 1], got %f", t)
	}
	if q.err != nil {
		badRequest(w, requestLogger, q.err)
		return
	}

	ll := latlon.Interpolate(from.Lat, from.Lon, to.Lat, to.Lon, t)

	writeJSON(w, requestLogger, s.round(ll, normalize))
}

func (s *server) path(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		// profile.Start may only run once at a time
		s.profiling.Lock()
		defer s.profiling.Unlock()
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(s.profilePath), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	requestLogger := newRequestLogger("path", req)

	q := query{values: req.URL.Query()}
	from := q.point("lat1", "lon1")
	to := q.point("lat2", "lon2")
	n := q.integer("n")
	radius := q.radius(s.radius)
	normalize := q.optionalBool("normalize")
	if q.err == nil && (n < 1 || n > maxPathPoints) {
		q.err = fmt.Errorf("n must be within [1, %d], got %d", maxPathPoints, n)
	}
	if q.err != nil {
		badRequest(w, requestLogger, q.err)
		return
	}

	start := time.Now()

	sphere := latlon.Sphere{Radius: radius}
	d, b := sphere.DistanceAndBearingTo(from, to)
	points := latlon.Path(from, to, n)
	for i := range points {
		points[i] = s.round(points[i], normalize)
	}

	requestLogger.Infof("Path of %d points took %s", len(points), time.Since(start).String())

	writeJSON(w, requestLogger, model.Path{
		Distance: angle.Round(d, s.digits),
		Bearing:  angle.Round(b, s.digits),
		Points:   points,
	})
}

func (s *server) angle(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("angle", req)

	value := req.URL.Query().Get("value")
	a, err := angle.ParseStrict(value)
	if err != nil {
		badRequest(w, requestLogger, err)
		return
	}

	writeJSON(w, requestLogger, model.Angle{
		Value:   value,
		Degrees: angle.Round(a, s.digits),
		Minutes: angle.ToMinutes(a),
	})
}

func (s *server) round(ll latlon.LatLon, normalize bool) latlon.LatLon {
	if normalize {
		ll.Lon = angle.Wrap180(ll.Lon)
	}
	return latlon.LatLon{
		Lat: angle.Round(ll.Lat, s.digits),
		Lon: angle.Round(ll.Lon, s.digits),
	}
}

// query collects the first parse error of a request's parameters.
type query struct {
	values url.Values
	err    error
}

func (q *query) float(name string) float64 {
	if q.err != nil {
		return 0
	}
	v := q.values.Get(name)
	if v == "" {
		q.err = fmt.Errorf("missing parameter '%s'", name)
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.err = fmt.Errorf("parameter '%s': %w", name, err)
		return 0
	}
	return f
}

func (q *query) optionalFloat(name string, def float64) float64 {
	if q.values.Get(name) == "" {
		return def
	}
	return q.float(name)
}

func (q *query) radius(def float64) float64 {
	r := q.optionalFloat("radius", def)
	if q.err == nil && (!(r > 0) || math.IsInf(r, 1)) {
		q.err = fmt.Errorf("radius must be a positive number, got %f", r)
	}
	return r
}

func (q *query) integer(name string) int {
	if q.err != nil {
		return 0
	}
	v := q.values.Get(name)
	if v == "" {
		q.err = fmt.Errorf("missing parameter '%s'", name)
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		q.err = fmt.Errorf("parameter '%s': %w", name, err)
		return 0
	}
	return i
}

func (q *query) optionalBool(name string) bool {
	if q.err != nil {
		return false
	}
	v := q.values.Get(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.err = fmt.Errorf("parameter '%s': %w", name, err)
		return false
	}
	return b
}

// point reads a coordinate pair, each given in decimal degrees or DMS notation.
func (q *query) point(lat, lon string) latlon.LatLon {
	return latlon.LatLon{Lat: q.coord(lat), Lon: q.coord(lon)}
}

func (q *query) coord(name string) float64 {
	if q.err != nil {
		return 0
	}
	v := q.values.Get(name)
	if v == "" {
		q.err = fmt.Errorf("missing parameter '%s'", name)
		return 0
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	a, err := angle.ParseStrict(v)
	if err != nil {
		q.err = fmt.Errorf("parameter '%s': %w", name, err)
		return 0
	}
	return a
}

// writeJSON answers 422 when v holds a value json cannot carry, such as NaN.
func writeJSON(w http.ResponseWriter, requestLogger *log.Entry, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, requestLogger, http.StatusUnprocessableEntity, fmt.Errorf("result is not a finite number: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(append(b, '\n')); err != nil {
		requestLogger.WithError(err).Error("Error writing response")
	}
}

func badRequest(w http.ResponseWriter, requestLogger *log.Entry, err error) {
	writeError(w, requestLogger, http.StatusBadRequest, err)
}

func writeError(w http.ResponseWriter, requestLogger *log.Entry, status int, err error) {
	requestLogger.WithError(err).Warn(http.StatusText(status))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: err.Error()})
}

func newRequestLogger(action string, req *http.Request) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	for _, ip := range strings.Split(ips, ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(ip) != nil {
		return ip, nil
	}
	return "", errors.New("no valid ip found")
}
