package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/glypha-labs/glypha/internal/branding"
	"github.com/glypha-labs/glypha/internal/font"
	"github.com/glypha-labs/glypha/internal/fontschema"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s API %s\n", branding.DisplayName(), s.version)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, "error fetching font", err)
		return
	}
	rec, err := s.registry.Get(id)
	if err != nil {
		s.writeError(w, "error fetching font", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	const msg = "error adding font"

	var in font.Input
	if err := decodeBody(w, r, fontschema.KindInput, &in); err != nil {
		s.writeError(w, msg, err)
		return
	}
	rec, err := s.registry.Create(in)
	if err != nil {
		s.writeError(w, msg, err)
		return
	}
	s.logger.Debug("font created", "id", rec.ID, "name", rec.Name)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	const msg = "error updating font"

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, msg, err)
		return
	}
	var p font.Patch
	if err := decodeBody(w, r, fontschema.KindPatch, &p); err != nil {
		s.writeError(w, msg, err)
		return
	}
	rec, err := s.registry.Update(id, p)
	if err != nil {
		s.writeError(w, msg, err)
		return
	}
	s.logger.Debug("font updated", "id", rec.ID)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	const msg = "error deleting font"

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, msg, err)
		return
	}
	rec, err := s.registry.Delete(id)
	if err != nil {
		s.writeError(w, msg, err)
		return
	}
	s.logger.Debug("font deleted", "id", rec.ID)
	writeJSON(w, http.StatusOK, rec)
}

func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &font.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a positive integer", raw)}
	}
	return id, nil
}

// decodeBody validates the request body against the schema for kind and
// decodes it into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, kind fontschema.Kind, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &font.ValidationError{Field: "body", Reason: "request body too large"}
		}
		return &font.InternalError{Op: "reading request body", Err: err}
	}

	res, err := fontschema.ValidateJSON(kind, data)
	if err != nil {
		if errors.Is(err, fontschema.ErrMalformed) {
			return &font.ValidationError{Field: "body", Reason: err.Error()}
		}
		return &font.InternalError{Op: "validating request body", Err: err}
	}
	if !res.Valid {
		return &schemaError{
			ValidationError: &font.ValidationError{Field: "body", Reason: res.Summary()},
			issues:          res.Issues,
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &font.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}
