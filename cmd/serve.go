package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordeye/catalog"
	"github.com/jsphweid/chordeye/config"
	"github.com/jsphweid/chordeye/identify"
	"github.com/jsphweid/chordeye/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var identifier *identify.Identifier

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord identification API",
	Long:  `Serves the chord identification API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func chordResponse(c model.Chord) *model.ChordResponse {
	res := &model.ChordResponse{
		Name:      c.Name(),
		Root:      c.Root.String(),
		Type:      c.Type.Name,
		Symbol:    c.Type.Symbol,
		Inversion: c.Inversion,
	}
	if c.Bass != nil {
		res.Bass = c.Bass.String()
	}
	return res
}

func handleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Could not parse request body"})
		return
	}

	notes := make([]model.ActiveNote, 0, len(input.Notes))
	for _, n := range input.Notes {
		if n < 0 || n > 127 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Note numbers must be 0-127"})
			return
		}
		notes = append(notes, model.ActiveNote{Note: uint8(n)})
	}

	var res model.IdentifyResponse
	if c, ok := identifier.Identify(notes); ok {
		res.Chord = chordResponse(c)
	}
	json.NewEncoder(w).Encode(res)
}

func handleChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ChordTypeResponse, 0)
	for _, ct := range catalog.All() {
		res = append(res, model.ChordTypeResponse{
			Name:      ct.Name,
			Symbol:    ct.Symbol,
			Intervals: ct.Intervals,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		panic("Could not load config: " + err.Error())
	}
	identifier = &identify.Identifier{MinScore: cfg.Identify.MinScore}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", handleIdentify).Methods("POST")
	router.HandleFunc("/chords", handleChords).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Printf("Listening on %v\n", cfg.Serve.Addr)
	log.Fatal(http.ListenAndServe(cfg.Serve.Addr, handler))
}
