package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KimNorgaard/go-exml"
	"github.com/KimNorgaard/go-exml/internal/digest"
	"github.com/KimNorgaard/go-exml/internal/export"
	"github.com/KimNorgaard/go-exml/internal/report"
)

// documentInfo describes a stored document.
type documentInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Created  time.Time `json:"created"`
	Items    int       `json:"items"`
	Digest   string    `json:"digest"`
	Warnings []string  `json:"warnings,omitempty"`
}

type documentResponse struct {
	documentInfo
	Summary report.Summary `json:"summary"`
}

type moveRequest struct {
	Region    string `json:"region"`
	FromPage  int    `json:"fromPage"`
	FromIndex int    `json:"fromIndex"`
	ToPage    int    `json:"toPage"`
	ToIndex   int    `json:"toIndex"`
}

type removeRequest struct {
	Region      string `json:"region"`
	Page        int    `json:"page"`
	PackageName string `json:"packageName"`
	ClassName   string `json:"className"`
}

type findResult struct {
	report.Location
	ClassName string `json:"className,omitempty"`
	Kind      string `json:"kind"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   s.cfg.Version,
		"documents": s.store.Len(),
	})
}

// handleUpload decodes the request body as a backup and stores it.
func (s *Server) handleUpload(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return newBadRequestError("failed to read body", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return newValidationError("body")
	}

	dec := exml.NewDecoder(bytes.NewReader(body), s.decodeOptions()...)
	doc, err := dec.Decode()
	if err != nil {
		if errors.Is(err, exml.ErrMalformedDocument) {
			return newBadRequestError("malformed document", err)
		}
		return newUnprocessableError("document rejected", err)
	}

	var warnings []string
	for _, w := range dec.Warnings() {
		warnings = append(warnings, w.Error())
	}

	entry, err := s.store.Put(c.QueryParam("name"), doc, warnings)
	if err != nil {
		return newInsufficientStorageError(err.Error())
	}
	s.logger.Info("document stored", "id", entry.ID, "name", entry.Name, "warnings", len(warnings))

	var resp documentResponse
	err = entry.With(func(doc *exml.Document) error {
		resp, err = describe(entry, doc)
		return err
	})
	if err != nil {
		return newInternalError("failed to describe document", err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleList(c echo.Context) error {
	entries := s.store.List()
	infos := make([]documentInfo, 0, len(entries))
	for _, e := range entries {
		err := e.With(func(doc *exml.Document) error {
			resp, err := describe(e, doc)
			infos = append(infos, resp.documentInfo)
			return err
		})
		if err != nil {
			return newInternalError("failed to describe document", err)
		}
	}
	return c.JSON(http.StatusOK, infos)
}

func (s *Server) handleGet(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	var resp documentResponse
	err = entry.With(func(doc *exml.Document) error {
		resp, err = describe(entry, doc)
		return err
	})
	if err != nil {
		return newInternalError("failed to describe document", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// handleEncode returns the canonical encoding of a document.
func (s *Server) handleEncode(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	var data []byte
	err = entry.With(func(doc *exml.Document) error {
		data, err = exml.Marshal(doc)
		return err
	})
	if err != nil {
		return newInternalError("failed to encode document", err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, data)
}

func (s *Server) handleExport(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	name := c.QueryParam("format")
	if name == "" {
		name = string(export.JSON)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return newBadRequestError("unsupported export format", err)
	}

	var buf bytes.Buffer
	err = entry.With(func(doc *exml.Document) error {
		return export.Encode(&buf, doc, format)
	})
	if err != nil {
		return newInternalError("failed to export document", err)
	}
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) handleFind(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	pkg := c.QueryParam("package")
	if pkg == "" {
		return newValidationError("package")
	}

	results := []findResult{}
	_ = entry.With(func(doc *exml.Document) error {
		for _, loc := range report.Locate(doc, pkg) {
			results = append(results, findResult{
				Location:  loc,
				ClassName: loc.Item.ClassName,
				Kind:      loc.Item.Kind.String(),
			})
		}
		return nil
	})
	return c.JSON(http.StatusOK, results)
}

func (s *Server) handleDigest(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	var d digest.Digest
	err = entry.With(func(doc *exml.Document) error {
		d, err = digest.Sum(doc)
		return err
	})
	if err != nil {
		return newInternalError("failed to hash document", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"digest": d.String()})
}

// handleMove moves one item within a region. Page fields are ignored for
// list regions.
func (s *Server) handleMove(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	var req moveRequest
	if err := c.Bind(&req); err != nil {
		return newBadRequestError("invalid JSON body", err)
	}
	if req.Region == "" {
		return newValidationError("region")
	}

	var moved bool
	err = entry.With(func(doc *exml.Document) error {
		if paged := doc.Paged(req.Region); paged != nil {
			moved = paged.Move(req.FromPage, req.FromIndex, req.ToPage, req.ToIndex)
			return nil
		}
		if list := doc.List(req.Region); list != nil {
			moved = list.Move(req.FromIndex, req.ToIndex)
			return nil
		}
		return newBadRequestError("unknown region", errors.New(req.Region))
	})
	if err != nil {
		return err
	}
	if !moved {
		return newConflictError("source item does not exist")
	}
	return s.handleGet(c)
}

func (s *Server) handleRemove(c echo.Context) error {
	entry, err := s.entry(c)
	if err != nil {
		return err
	}
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return newBadRequestError("invalid JSON body", err)
	}
	if req.Region == "" {
		return newValidationError("region")
	}

	var removed bool
	err = entry.With(func(doc *exml.Document) error {
		if paged := doc.Paged(req.Region); paged != nil {
			removed = paged.Remove(req.Page, req.PackageName, req.ClassName)
			return nil
		}
		if list := doc.List(req.Region); list != nil {
			removed = list.Remove(req.PackageName, req.ClassName)
			return nil
		}
		return newBadRequestError("unknown region", errors.New(req.Region))
	})
	if err != nil {
		return err
	}
	if !removed {
		return newNotFoundError("item", req.PackageName+"/"+req.ClassName)
	}
	return s.handleGet(c)
}

func (s *Server) handleDelete(c echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return newNotFoundError("document", id)
	}
	s.logger.Info("document deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) entry(c echo.Context) (*Entry, error) {
	id := c.Param("id")
	e, ok := s.store.Get(id)
	if !ok {
		return nil, newNotFoundError("document", id)
	}
	return e, nil
}

func describe(e *Entry, doc *exml.Document) (documentResponse, error) {
	d, err := digest.Sum(doc)
	if err != nil {
		return documentResponse{}, err
	}
	summary := report.Summarize(doc)
	return documentResponse{
		documentInfo: documentInfo{
			ID:       e.ID,
			Name:     e.Name,
			Created:  e.Created,
			Items:    summary.Total(),
			Digest:   d.String(),
			Warnings: e.Warnings,
		},
		Summary: summary,
	}, nil
}
