package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/db"
	"github.com/jsphweid/blockbeat/midi"
	"github.com/jsphweid/blockbeat/model"
	"github.com/jsphweid/blockbeat/render"
	"github.com/jsphweid/blockbeat/sequence"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// gridFromQuery starts from the grid flags and applies query overrides,
// so a served instance keeps its launch defaults.
func gridFromQuery(r *http.Request) (model.Grid, model.PairOptions, error) {
	grid, err := gridFromFlags()
	if err != nil {
		return model.Grid{}, model.PairOptions{}, err
	}
	opts := pairOptsFromFlags()

	q := r.URL.Query()
	if v := q.Get("precision"); v != "" {
		p, err := model.ParsePrecision(v)
		if err != nil {
			return grid, opts, err
		}
		grid.Precision = p
	}
	if v := q.Get("triplets"); v != "" {
		grid.TripletEnabled = v == "true" || v == "1"
	}
	if v := q.Get("fuzz"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return grid, opts, errors.Wrap(err, "parsing fuzz")
		}
		grid.FuzzTicks = uint32(n)
	}
	if v := q.Get("tieEpsilon"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return grid, opts, errors.Wrap(err, "parsing tieEpsilon")
		}
		opts.TieEpsilonTicks = uint32(n)
	}
	return grid, opts, nil
}

func readUpload(r *http.Request) ([]byte, string, error) {
	if f, header, err := r.FormFile("file"); err == nil {
		defer f.Close()
		dat, err := io.ReadAll(f)
		if err != nil {
			return nil, "", errors.Wrap(err, "reading upload")
		}
		return dat, header.Filename, nil
	}
	dat, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading request body")
	}
	if len(dat) == 0 {
		return nil, "", errors.New("empty request body")
	}
	return dat, "", nil
}

func attachMetadata(doc *render.Document, filename string) {
	if filename == "" {
		return
	}
	metadatas, err := db.GetMidiMetadatas([]string{filename})
	if err != nil {
		logrus.Warnf("metadata lookup failed: %v", err)
		return
	}
	if md, ok := metadatas[filename]; ok {
		doc.Metadata = &md
	}
}

// HandleConvert converts the SMF in the request body, uploaded raw or
// as a multipart "file" part. Exported so the end to end tests can
// drive it without a listener.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	grid, opts, err := gridFromQuery(r)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	dat, filename, err := readUpload(r)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	parsed, err := midi.Read(dat)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	hdr, tracks, err := midi.Extract(parsed)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	events, err := sequence.Convert(tracks, hdr, grid, opts)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	doc := render.Build(hdr, grid, events, filename)
	attachMetadata(&doc, filename)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/healthz", handleHealthz).Methods("GET")
	handler := cors.Default().Handler(router)
	fmt.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
