package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// formInt parses a required integer form field
func formInt(r *http.Request, field string) (int, error) {
	raw := r.FormValue(field)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return v, nil
}

// formFloat parses a required numeric form field
func formFloat(r *http.Request, field string) (float64, error) {
	raw := r.FormValue(field)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return v, nil
}

// pathID extracts the integer identity from the route
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer")
	}
	return id, nil
}
