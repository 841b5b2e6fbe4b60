package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/composer/constants"
	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/logging"
	"github.com/jsphweid/composer/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var port int

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord, scale and pitch API",
	Long:  `Serves the chord, scale and pitch API over HTTP as JSON`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(port)
	},
}

type requestIdKey struct{}

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIdKey{}, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logging.Info("handled request", logging.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"elapsed":    time.Since(start).String(),
		})
	})
}

func requestId(r *http.Request) string {
	id, _ := r.Context().Value(requestIdKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "could not encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Warn("bad request", logging.Fields{
		"request_id": requestId(r),
		"path":       r.URL.Path,
		"error":      err.Error(),
	})
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

// rootAndTemperament reads the shared "root" and "temperament" query
// parameters. root defaults to A4.
func rootAndTemperament(r *http.Request) (float64, *interval.Temperament, error) {
	q := r.URL.Query()

	root := constants.DefaultRootFrequency
	if s := q.Get("root"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid root %q", s)
		}
		root = f
	}

	name := q.Get("temperament")
	if name == "" {
		name = constants.GetTemperamentName()
	}
	t, err := interval.ByName(name)
	if err != nil {
		return 0, nil, err
	}
	return root, t, nil
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	root, t, err := rootAndTemperament(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	quality := r.URL.Query().Get("quality")
	if quality == "" {
		writeError(w, r, fmt.Errorf("missing quality"))
		return
	}

	c, err := BuildChord(root, quality, t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{RequestId: requestId(r), Chord: c})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	root, t, err := rootAndTemperament(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s, err := BuildScale(root, r.URL.Query().Get("mode"), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ScaleResponse{RequestId: requestId(r), Scale: s})
}

func HandlePitch(w http.ResponseWriter, r *http.Request) {
	p, err := ResolvePitch(mux.Vars(r)["identifier"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PitchResponse{RequestId: requestId(r), Pitch: ToModelPitch(p)})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chord", HandleChord).Methods(http.MethodGet)
	router.HandleFunc("/scale", HandleScale).Methods(http.MethodGet)
	router.HandleFunc("/pitch/{identifier}", HandlePitch).Methods(http.MethodGet)
	router.Use(withRequestId)

	return cors.Default().Handler(router)
}

func serve(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("serving", logging.Fields{"addr": addr})
	return http.ListenAndServe(addr, NewRouter())
}
