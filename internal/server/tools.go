package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the input every tool shares: the image file to operate on.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// savePathProperty is the optional output path transforming tools accept.
func savePathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also write the result to disk as PNG",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth, and alpha channel presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Resize Operations
		{
			Name:        "image_resize_scale",
			Description: "Resize an image by a uniform scale factor. The result measures floor(width*scale) x floor(height*scale).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor, expected in (0, 1]; values above 1 upscale",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path", "scale"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Produce an image at exact target dimensions by copying the top-left region 1:1 (subset extraction, never scaling).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_resize_ratio",
			Description: "Produce an image at exact target dimensions with the source drawn from the origin scaled by an independent ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Scale ratio applied to the source before drawing",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path", "width", "height", "ratio"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image. Requests are clamped to the image bounds; a zero or negative width/height means 'to the far edge'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based); negative values clamp to 0",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based); negative values clamp to 0",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Region width; omit or 0 for the full remaining width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Region height; omit or 0 for the full remaining height",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Rotation Operations
		{
			Name:        "image_rotate",
			Description: "Rotate an image by an angle in degrees (clockwise-positive). The canvas expands to the rotated bounding box so no corner is clipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in degrees, clockwise-positive",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path", "angle"},
			},
		},
		{
			Name:        "image_skew_angle",
			Description: "Estimate the rotation angle in degrees that would deskew the image's content, without rotating.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_deskew",
			Description: "Estimate the image's skew angle and rotate by it in one step.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"save_path": savePathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Whitespace Operations
		{
			Name:        "image_trim",
			Description: "Auto-crop an image to the tightest rectangle enclosing all non-background content. A uniformly background image comes back unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as hex (default #FFFFFF)",
						"default":     "#FFFFFF",
					},
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Perceptual color tolerance (0 = exact match). Try 0.02-0.05 for scans.",
						"default":     0,
					},
					"auto_background": map[string]interface{}{
						"type":        "boolean",
						"description": "Detect the dominant color and trim against it instead of 'background'",
						"default":     false,
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_add_border",
			Description: "Composite an image onto a larger canvas filled with a border color. The result measures (width+2*size) x (height+2*size); the source is scaled to fit and centered, so the visible margin is approximate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Border color as hex, #RRGGBB or #RRGGBBAA (default #FFFFFF)",
						"default":     "#FFFFFF",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Border size in pixels applied to all four sides",
					},
					"save_path": savePathProperty(),
				},
				"required": []string{"path", "size"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
