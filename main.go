package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/spherical/angle"
	"github.com/a-bouts/spherical/api"
	"github.com/a-bouts/spherical/latlon"
)

func main() {

	fs := flag.NewFlagSet("spherical", flag.ExitOnError)
	var (
		listen      = fs.String("listen", ":8888", "listen address")
		digits      = fs.Int("digits", angle.DefaultDigits, "decimals kept in responses")
		radius      = fs.Float64("radius", latlon.EarthRadius, "default sphere radius")
		logLevel    = fs.String("log-level", "info", "log level (debug, info, warn, error)")
		corsOrigin  = fs.String("cors-origin", "", "comma separated allowed CORS origins")
		cpuprofile  = fs.Bool("cpuprofile", false, "write a cpu profile of path requests")
		profilePath = fs.String("profile-path", "", "directory of cpu profiles")
		_           = fs.String("config", "", "config file")
	)
	err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("SPHERICAL"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatalf("Unknown log level '%s'", *logLevel)
	}
	log.SetLevel(level)

	router := api.InitServer(api.Config{
		Digits:      *digits,
		Radius:      *radius,
		CPUProfile:  *cpuprofile,
		ProfilePath: *profilePath,
	})

	var h http.Handler = router
	if *corsOrigin != "" {
		h = handlers.CORS(
			handlers.AllowedOrigins(strings.Split(*corsOrigin, ",")),
			handlers.AllowedMethods([]string{http.MethodGet}),
		)(h)
	}
	h = handlers.CombinedLoggingHandler(log.StandardLogger().WriterLevel(log.DebugLevel), h)

	log.Infof("Start server on %s (radius %.1f, %d digits)", *listen, *radius, *digits)
	log.Fatal(http.ListenAndServe(*listen, h))
}
