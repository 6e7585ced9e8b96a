package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// PDFOptions configures the headless browser used for PDF export.
type PDFOptions struct {
	// ControlURL connects to a running browser instead of launching one.
	ControlURL string
	// BrowserBin is the browser executable. Empty lets the launcher find or
	// download one.
	BrowserBin string
	// NoSandbox disables the browser sandbox (needed in most containers).
	NoSandbox bool
	// Timeout bounds the whole export. Zero means no extra limit.
	Timeout time.Duration
}

const footerTemplate = `<div style="font-size:10px; color:#555; width:100%; padding:0 14mm;">` +
	`<span class="title"></span>` +
	`<span style="float:right">第 <span class="pageNumber"></span> / <span class="totalPages"></span> 頁</span></div>`

// PDF prints the checklist page to an A4 PDF with a headless browser.
func PDF(ctx context.Context, c *models.Checklist, opts PDFOptions) ([]byte, error) {
	doc, err := HTML(c)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	controlURL := opts.ControlURL
	launched := false
	if controlURL == "" {
		l := launcher.New().Context(ctx).Headless(true).NoSandbox(opts.NoSandbox)
		if opts.BrowserBin != "" {
			l = l.Bin(opts.BrowserBin)
		}
		url, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		defer l.Kill()
		controlURL = url
		launched = true
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	if launched {
		defer func() { _ = browser.Close() }()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	if err := page.SetDocumentContent(string(doc)); err != nil {
		return nil, fmt.Errorf("load checklist page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for checklist page: %w", err)
	}

	margin := mmToInches(14)
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:          floatPtr(mmToInches(210)),
		PaperHeight:         floatPtr(mmToInches(297)),
		MarginTop:           floatPtr(margin),
		MarginBottom:        floatPtr(margin),
		MarginLeft:          floatPtr(margin),
		MarginRight:         floatPtr(margin),
		PrintBackground:     true,
		DisplayHeaderFooter: true,
		HeaderTemplate:      "<div></div>",
		FooterTemplate:      footerTemplate,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return io.ReadAll(stream)
}

func mmToInches(mm float64) float64 {
	return float64(MMToTwips(mm)) / TwipsPerInch
}

func floatPtr(v float64) *float64 {
	return &v
}
