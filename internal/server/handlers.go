package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/image-transform-mcp/internal/raster"
	"github.com/ironsheep/image-transform-mcp/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_crop", "image_trim").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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
//  3. Loads the image from cache
//  4. Calls the appropriate transform/raster function
//  5. Returns the encoded result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Resize Operations
	case "image_resize_scale":
		return s.handleImageResizeScale(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_resize_ratio":
		return s.handleImageResizeRatio(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)

	// Rotation Operations
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_skew_angle":
		return s.handleImageSkewAngle(args)
	case "image_deskew":
		return s.handleImageDeskew(args)

	// Whitespace Operations
	case "image_trim":
		return s.handleImageTrim(args)
	case "image_add_border":
		return s.handleImageAddBorder(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodeResult packages a transformed image and, when savePath is set, also
// writes it to disk.
func (s *Server) encodeResult(img image.Image, savePath string) (interface{}, error) {
	if savePath != "" {
		if err := raster.SaveImage(img, savePath); err != nil {
			return nil, err
		}
	}
	return raster.Encode(img)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.GetDimensions(s.cache, a.Path)
}

// === Resize Operation Handlers ===

type imageResizeScaleArgs struct {
	Path     string  `json:"path"`
	Scale    float64 `json:"scale"`
	SavePath string  `json:"save_path"`
}

func (s *Server) handleImageResizeScale(args json.RawMessage) (interface{}, error) {
	var a imageResizeScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := transform.Resize(img, a.Scale)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}

type imageResizeArgs struct {
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := transform.ResizeTo(img, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}

type imageResizeRatioArgs struct {
	Path     string  `json:"path"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Ratio    float64 `json:"ratio"`
	SavePath string  `json:"save_path"`
}

func (s *Server) handleImageResizeRatio(args json.RawMessage) (interface{}, error) {
	var a imageResizeRatioArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := transform.ResizeWithRatio(img, a.Width, a.Height, a.Ratio)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path     string `json:"path"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region := transform.Rect(a.X, a.Y, a.Width, a.Height)
	out, err := transform.Crop(img, &region)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}

// === Rotation Operation Handlers ===

type imageRotateArgs struct {
	Path     string  `json:"path"`
	Angle    float64 `json:"angle"`
	SavePath string  `json:"save_path"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(transform.Rotate(img, a.Angle), a.SavePath)
}

// SkewAngleResult is the image_skew_angle payload.
type SkewAngleResult struct {
	AngleDegrees float64 `json:"angle_degrees"`
}

func (s *Server) handleImageSkewAngle(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	angle, err := transform.SkewAngle(img, s.estimator)
	if err != nil {
		return nil, err
	}
	return &SkewAngleResult{AngleDegrees: angle}, nil
}

type imageDeskewArgs struct {
	Path     string `json:"path"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleImageDeskew(args json.RawMessage) (interface{}, error) {
	var a imageDeskewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := transform.Deskew(img, s.estimator)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}

// === Whitespace Operation Handlers ===

type imageTrimArgs struct {
	Path           string  `json:"path"`
	Background     string  `json:"background"`
	Tolerance      float64 `json:"tolerance"`
	AutoBackground bool    `json:"auto_background"`
	SavePath       string  `json:"save_path"`
}

func (s *Server) handleImageTrim(args json.RawMessage) (interface{}, error) {
	var a imageTrimArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	bg := transform.White
	if a.AutoBackground {
		bg = transform.DetectBackground(img)
	} else if a.Background != "" {
		bg, err = transform.ParseColor(a.Background)
		if err != nil {
			return nil, err
		}
	}

	return s.encodeResult(transform.TrimColor(img, bg, a.Tolerance), a.SavePath)
}

type imageAddBorderArgs struct {
	Path     string `json:"path"`
	Color    string `json:"color"`
	Size     int    `json:"size"`
	SavePath string `json:"save_path"`
}

func (s *Server) handleImageAddBorder(args json.RawMessage) (interface{}, error) {
	var a imageAddBorderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	c := transform.White
	if a.Color != "" {
		c, err = transform.ParseColor(a.Color)
		if err != nil {
			return nil, err
		}
	}

	out, err := transform.AddBorder(img, c, a.Size)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(out, a.SavePath)
}
