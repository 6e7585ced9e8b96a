package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/output"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/render"
)

// parseRequest is the JSON form of a parse request.
type parseRequest struct {
	TableHTML string `json:"tableHtml"`
}

// health handles GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": s.now().UTC().Format(time.RFC3339)})
}

// parse handles POST /parse
// Accepts a multipart htmlFile upload, a tableHtml form field or a JSON body
// {"tableHtml": "..."} and responds with the extracted checklist.
func (s *Server) parse(c *gin.Context) {
	result, err := s.extract(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	body, err := output.ToJSON(result, false)
	if err != nil {
		s.handleError(c, err)
		return
	}
	// Merge the message into the result object: {"message": ..., ...result}.
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(body, &merged); err != nil {
		s.handleError(c, err)
		return
	}
	merged["message"] = json.RawMessage(`"解析成功"`)
	c.PureJSON(http.StatusOK, merged)
}

// export handles POST /export/:format
// Takes the same input as parse and responds with the rendered report file.
func (s *Server) export(c *gin.Context) {
	format, err := render.ParseFormat(c.Param("format"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.extract(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	data, err := s.exporter.Render(c.Request.Context(), format, result)
	if err != nil {
		s.handleError(c, fmt.Errorf("render %s: %w", format, err))
		return
	}

	c.Header("Content-Disposition", contentDisposition(render.Filename(titleOf(result), format, s.now())))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// extract reads the request input and runs the pipeline.
func (s *Server) extract(c *gin.Context) (*models.Checklist, error) {
	if s.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	}

	opts := s.options(c)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req parseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", errMissingInput, err)
		}
		if strings.TrimSpace(req.TableHTML) == "" {
			return nil, errMissingInput
		}
		return gradcheck.Parse(req.TableHTML, opts)
	}

	file, header, err := c.Request.FormFile("htmlFile")
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		raw, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		return gradcheck.ParseBytes(raw, header.Header.Get("Content-Type"), opts)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
	}

	if html := c.PostForm("tableHtml"); strings.TrimSpace(html) != "" {
		return gradcheck.Parse(html, opts)
	}
	return nil, errMissingInput
}

func (s *Server) options(c *gin.Context) gradcheck.Options {
	log := s.log.With().Str("request_id", c.GetString(requestIDKey)).Logger()
	opts := gradcheck.DefaultOptions()
	opts.Rules = s.rules
	opts.Logger = &log
	opts.Now = s.now
	return opts
}

func titleOf(c *models.Checklist) string {
	if c.Meta.Title != nil {
		return *c.Meta.Title
	}
	return ""
}

// contentDisposition builds an attachment header that survives non-ASCII names.
func contentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		asciiFallback(filename), url.PathEscape(filename))
}

func asciiFallback(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x80 && r != '"' && r != '\\' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
