package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ironsheep/color-tools-mcp/internal/audit"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/wcag"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// paramError marks a failure caused by the call's arguments rather than by
// the tool itself. It is reported with JSON-RPC code -32602.
type paramError struct {
	err error
}

func (e *paramError) Error() string { return e.err.Error() }
func (e *paramError) Unwrap() error { return e.err }

func invalidParams(format string, a ...interface{}) error {
	return &paramError{err: fmt.Errorf(format, a...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed or missing arguments and unknown tools return code -32602; any
// other tool failure, such as an unparseable color or a missing image file,
// returns code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var pe *paramError
		if errors.As(err, &pe) {
			s.log.Debug("tool rejected arguments", "tool", params.Name, "err", err)
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		s.log.Info("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.log.Debug("tool call", "tool", params.Name, "elapsed", time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Parses colors and loads images as needed
//  4. Calls the appropriate color/wcag/imaging/audit function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Parsing and Conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_validate":
		return s.handleColorValidate(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_format":
		return s.handleColorFormat(args)

	// Perceptual Metrics
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_find_accessible":
		return s.handleColorFindAccessible(args)
	case "color_delta_e":
		return s.handleColorDeltaE(args)
	case "color_nearest_named":
		return s.handleColorNearestNamed(args)

	// Wide Gamut and HDR
	case "color_wide_gamut":
		return s.handleColorWideGamut(args)
	case "color_hdr_transfer":
		return s.handleColorHDRTransfer(args)

	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Image Colors
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_region_contrast":
		return s.handleImageRegionContrast(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)
	case "image_text_contrast":
		return s.handleImageTextContrast(args)

	default:
		return nil, invalidParams("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Absent arguments decode as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &paramError{err: err}
	}
	return nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidParams("missing required argument %q", name)
	}
	return nil
}

// parseColor parses input with the server's parser mode, or with strict
// when the call overrides it.
func (s *Server) parseColor(input string, strict *bool) (color.Color, error) {
	p := s.parser
	if strict != nil {
		p.Strict = *strict
	}
	return p.Parse(input)
}

func (s *Server) precision(p *int) (int, error) {
	if p == nil {
		return s.cfg.Precision, nil
	}
	if *p < color.FullPrecision {
		return 0, invalidParams("precision %d below %d", *p, color.FullPrecision)
	}
	return *p, nil
}

func parseSpace(name string) (color.Space, error) {
	sp, err := color.ParseSpace(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return 0, &paramError{err: err}
	}
	return sp, nil
}

// colorView is the JSON form of a color.
type colorView struct {
	Space       string    `json:"space"`
	Components  []float64 `json:"components"`
	Alpha       *float64  `json:"alpha,omitempty"`
	CSS         string    `json:"css"`
	Hex         string    `json:"hex"`
	RGB         color.RGBA8 `json:"rgb"`
	InSRGBGamut bool      `json:"in_srgb_gamut"`
}

func viewOf(c color.Color) colorView {
	v := colorView{
		Space:       c.Space().String(),
		Components:  c.Components(),
		CSS:         color.Format(c),
		Hex:         color.Hex(c),
		RGB:         c.RGB8(),
		InSRGBGamut: color.InGamut(c),
	}
	if a, ok := c.Alpha(); ok {
		v.Alpha = &a
	}
	return v
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// === Color Parsing and Conversion Handlers ===

type colorArgs struct {
	Color  string `json:"color"`
	Strict *bool  `json:"strict,omitempty"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color", a.Color); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, a.Strict)
	if err != nil {
		return nil, err
	}
	return viewOf(c), nil
}

type colorValidateResult struct {
	Valid    bool   `json:"valid"`
	ValidCSS bool   `json:"valid_css"`
	Space    string `json:"space,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleColorValidate(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, a.Strict)
	if err != nil {
		return &colorValidateResult{Error: err.Error()}, nil
	}
	return &colorValidateResult{
		Valid:    true,
		ValidCSS: color.IsValidCSSColor(a.Color),
		Space:    c.Space().String(),
	}, nil
}

type colorConvertArgs struct {
	Color     string `json:"color"`
	To        string `json:"to"`
	Precision *int   `json:"precision,omitempty"`
	Strict    *bool  `json:"strict,omitempty"`
}

type colorConvertResult struct {
	Input string `json:"input"`
	colorView
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color", a.Color); err != nil {
		return nil, err
	}
	if err := required("to", a.To); err != nil {
		return nil, err
	}
	target, err := parseSpace(a.To)
	if err != nil {
		return nil, err
	}
	prec, err := s.precision(a.Precision)
	if err != nil {
		return nil, err
	}

	p := s.parser
	if a.Strict != nil {
		p.Strict = *a.Strict
	}
	var out color.Color
	if s.conversions != nil {
		out, err = s.conversions.ParseConvert(p, a.Color, target, prec)
	} else {
		out, err = p.Parse(a.Color)
		if err == nil {
			out, err = color.Convert(out, target, prec)
		}
	}
	if err != nil {
		return nil, err
	}
	return &colorConvertResult{Input: a.Color, colorView: viewOf(out)}, nil
}

type colorFormatArgs struct {
	Color     string `json:"color"`
	Space     string `json:"space,omitempty"`
	Style     string `json:"style,omitempty"`
	Precision *int   `json:"precision,omitempty"`
}

type colorFormatResult struct {
	Formatted string `json:"formatted"`
	Space     string `json:"space"`
	Style     string `json:"style"`
}

func (s *Server) handleColorFormat(args json.RawMessage) (interface{}, error) {
	var a colorFormatArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color", a.Color); err != nil {
		return nil, err
	}
	style, err := color.ParseStyle(strings.ToLower(a.Style))
	if err != nil {
		return nil, &paramError{err: err}
	}
	prec, err := s.precision(a.Precision)
	if err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, nil)
	if err != nil {
		return nil, err
	}
	if a.Space != "" {
		target, err := parseSpace(a.Space)
		if err != nil {
			return nil, err
		}
		if c, err = color.Convert(c, target, color.FullPrecision); err != nil {
			return nil, err
		}
	}
	return &colorFormatResult{
		Formatted: color.FormatWith(c, color.FormatOptions{Precision: prec, Style: style}),
		Space:     c.Space().String(),
		Style:     style.String(),
	}, nil
}

// === Perceptual Metric Handlers ===

type colorContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type colorContrastResult struct {
	Foreground          string  `json:"foreground"`
	Background          string  `json:"background"`
	ForegroundLuminance float64 `json:"foreground_luminance"`
	BackgroundLuminance float64 `json:"background_luminance"`
	wcag.Report
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("foreground", a.Foreground); err != nil {
		return nil, err
	}
	if err := required("background", a.Background); err != nil {
		return nil, err
	}
	fg, err := s.parseColor(a.Foreground, nil)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := s.parseColor(a.Background, nil)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	report := wcag.Assess(fg, bg)
	report.Ratio = round(report.Ratio, 2)
	return &colorContrastResult{
		Foreground:          color.Hex(fg),
		Background:          color.Hex(bg),
		ForegroundLuminance: round(wcag.RelativeLuminance(fg), 4),
		BackgroundLuminance: round(wcag.RelativeLuminance(bg), 4),
		Report:              report,
	}, nil
}

type colorFindAccessibleArgs struct {
	Background  string  `json:"background"`
	Foreground  string  `json:"foreground,omitempty"`
	TargetRatio float64 `json:"target_ratio,omitempty"`
	Direction   string  `json:"direction,omitempty"`
}

type colorFindAccessibleResult struct {
	Color colorView `json:"color"`
	wcag.Report
}

func (s *Server) handleColorFindAccessible(args json.RawMessage) (interface{}, error) {
	var a colorFindAccessibleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("background", a.Background); err != nil {
		return nil, err
	}
	if a.TargetRatio == 0 {
		a.TargetRatio = wcag.MinRatioAA
	}
	dir, err := wcag.ParseDirection(strings.ToLower(a.Direction))
	if err != nil {
		return nil, &paramError{err: err}
	}
	bg, err := s.parseColor(a.Background, nil)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	var found color.Color
	if a.Foreground != "" {
		fg, err := s.parseColor(a.Foreground, nil)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		found, err = wcag.AdjustForeground(fg, bg, a.TargetRatio, dir)
		if err != nil {
			return nil, err
		}
	} else {
		found, err = wcag.FindAccessibleColor(bg, a.TargetRatio, dir)
		if err != nil {
			return nil, err
		}
	}

	report := wcag.Assess(found, bg)
	report.Ratio = round(report.Ratio, 2)
	return &colorFindAccessibleResult{Color: viewOf(found), Report: report}, nil
}

type colorDeltaEArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Method string `json:"method,omitempty"`
}

type colorDeltaEResult struct {
	DeltaE     float64 `json:"delta_e"`
	Method     string  `json:"method"`
	Noticeable bool    `json:"noticeable"`
}

func (s *Server) handleColorDeltaE(args json.RawMessage) (interface{}, error) {
	var a colorDeltaEArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color1", a.Color1); err != nil {
		return nil, err
	}
	if err := required("color2", a.Color2); err != nil {
		return nil, err
	}

	var distance func(a, b color.Color) float64
	method := strings.ToLower(a.Method)
	switch method {
	case "", "ciede2000", "de2000", "2000":
		distance, method = color.DeltaE2000, "ciede2000"
	case "cie76", "de76", "76":
		distance, method = color.DeltaE76, "cie76"
	default:
		return nil, invalidParams("unknown delta E method %q (want ciede2000 or cie76)", a.Method)
	}

	c1, err := s.parseColor(a.Color1, nil)
	if err != nil {
		return nil, fmt.Errorf("color1: %w", err)
	}
	c2, err := s.parseColor(a.Color2, nil)
	if err != nil {
		return nil, fmt.Errorf("color2: %w", err)
	}
	d := distance(c1, c2)
	return &colorDeltaEResult{
		DeltaE:     round(d, 4),
		Method:     method,
		Noticeable: d > imaging.NoticeableDeltaE,
	}, nil
}

type colorNearestNamedResult struct {
	Name   string  `json:"name"`
	Hex    string  `json:"hex"`
	DeltaE float64 `json:"delta_e"`
	Exact  bool    `json:"exact"`
}

func (s *Server) handleColorNearestNamed(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color", a.Color); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, a.Strict)
	if err != nil {
		return nil, err
	}
	name, d := color.NearestNamed(c)
	named, _ := color.NamedColor(name)
	return &colorNearestNamedResult{
		Name:   name,
		Hex:    color.Hex(named),
		DeltaE: round(d, 4),
		Exact:  d < 1e-9,
	}, nil
}

// === Wide Gamut and HDR Handlers ===

type colorWideGamutArgs struct {
	Color     string `json:"color"`
	Gamut     string `json:"gamut"`
	Extended  bool   `json:"extended,omitempty"`
	Precision *int   `json:"precision,omitempty"`
}

type colorWideGamutResult struct {
	Gamut      string    `json:"gamut"`
	Components []float64 `json:"components"`
	CSS        string    `json:"css"`
	Extended   bool      `json:"extended"`
	Headroom   float64   `json:"headroom"`
	InGamut    bool      `json:"in_gamut"`
}

func (s *Server) handleColorWideGamut(args json.RawMessage) (interface{}, error) {
	var a colorWideGamutArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("color", a.Color); err != nil {
		return nil, err
	}
	if err := required("gamut", a.Gamut); err != nil {
		return nil, err
	}
	gamut, err := parseSpace(a.Gamut)
	if err != nil {
		return nil, err
	}
	prec, err := s.precision(a.Precision)
	if err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, nil)
	if err != nil {
		return nil, err
	}

	lin := color.ToLinearRGB(c)
	encoded, err := color.ToWideGamutE(lin, gamut, a.Extended)
	if err != nil {
		return nil, &paramError{err: err}
	}

	// in gamut when clipping left the color unchanged
	inGamut := true
	if clipped, err := color.ToWideGamutE(lin, gamut, false); err == nil {
		back, _ := color.FromWideGamut(clipped, gamut, false)
		for i := range back {
			if math.Abs(back[i]-lin[i]) > 1e-6 {
				inGamut = false
			}
		}
	}

	wc, err := color.New(gamut, encoded[:]...)
	if err != nil {
		return nil, err
	}
	if alpha, ok := c.Alpha(); ok {
		wc = wc.WithAlpha(alpha)
	}
	wc = color.Round(wc, prec)
	return &colorWideGamutResult{
		Gamut:      gamut.String(),
		Components: wc.Components(),
		CSS:        color.FormatWith(wc, color.FormatOptions{Precision: prec}),
		Extended:   a.Extended,
		Headroom:   color.Headroom(gamut),
		InGamut:    inGamut,
	}, nil
}

type colorHDRTransferArgs struct {
	Value     *float64 `json:"value"`
	Transfer  string   `json:"transfer"`
	ScaleNits float64  `json:"scale_nits,omitempty"`
	Inverse   bool     `json:"inverse,omitempty"`
}

type colorHDRTransferResult struct {
	Transfer  string  `json:"transfer"`
	Direction string  `json:"direction"`
	Input     float64 `json:"input"`
	Output    float64 `json:"output"`
	ScaleNits float64 `json:"scale_nits"`
}

func (s *Server) handleColorHDRTransfer(args json.RawMessage) (interface{}, error) {
	var a colorHDRTransferArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Value == nil {
		return nil, invalidParams("missing required argument %q", "value")
	}
	fn, err := color.ParseTransferFunction(strings.ToLower(a.Transfer))
	if err != nil {
		return nil, &paramError{err: err}
	}
	scale := a.ScaleNits
	if scale <= 0 {
		scale = color.ReferenceWhiteNits
	}

	res := &colorHDRTransferResult{
		Transfer:  fn.String(),
		Direction: "encode",
		Input:     *a.Value,
		ScaleNits: scale,
	}
	if a.Inverse {
		res.Direction = "decode"
		res.Output = color.InvertTransfer(*a.Value, scale, fn)
	} else {
		res.Output = color.ApplyTransfer(*a.Value, scale, fn)
	}
	res.Output = round(res.Output, 6)
	return res, nil
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Image Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, invalidParams("points must not be empty")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region)
}

type imageRegionArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if a.Region == nil {
		return nil, invalidParams("missing required argument %q", "region")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AverageColor(img, *a.Region)
}

type imageRegionContrastArgs struct {
	Path       string          `json:"path"`
	Foreground *imaging.Region `json:"foreground"`
	Background *imaging.Region `json:"background"`
}

func (s *Server) handleImageRegionContrast(args json.RawMessage) (interface{}, error) {
	var a imageRegionContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if a.Foreground == nil || a.Background == nil {
		return nil, invalidParams("foreground and background regions are required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.RegionContrast(img, *a.Foreground, *a.Background)
}

type imageCompareRegionsArgs struct {
	Path    string          `json:"path"`
	Region1 *imaging.Region `json:"region1"`
	Region2 *imaging.Region `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if a.Region1 == nil || a.Region2 == nil {
		return nil, invalidParams("region1 and region2 are required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, *a.Region1, *a.Region2)
}

type imageTextContrastArgs struct {
	Path        string          `json:"path"`
	TargetRatio float64         `json:"target_ratio,omitempty"`
	Region      *imaging.Region `json:"region,omitempty"`
	Suggest     bool            `json:"suggest,omitempty"`
}

func (s *Server) handleImageTextContrast(args json.RawMessage) (interface{}, error) {
	var a imageTextContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return audit.TextContrast(img, s.locator, audit.Options{
		Target:  a.TargetRatio,
		Region:  a.Region,
		Suggest: a.Suggest,
	})
}
