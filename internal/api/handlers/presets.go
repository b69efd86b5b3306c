package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ggv-mieterstrom/internal/api/models"
	"ggv-mieterstrom/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles scenario preset requests
type PresetHandler struct {
	presetDir string
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(presetDir string) *PresetHandler {
	return &PresetHandler{presetDir: presetDir}
}

// PresetDir returns the resolved preset directory
func (h *PresetHandler) PresetDir() string {
	return h.presetDir
}

// DefaultPresetDir resolves the preset directory from PRESET_DIR or the
// working directory (examples/presets).
func DefaultPresetDir() string {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "presets")
		} else {
			dir = "./examples/presets"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	return dir
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		// Missing directory is not an error; presets are optional.
		log.Printf("PresetHandler: failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.presetDir, entry.Name())
		info, err := loadPresetInfo(path, entry.Name())
		if err != nil {
			log.Printf("PresetHandler: skipping preset file %s: %v", path, err)
			continue
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func loadPresetInfo(path, filename string) (*models.PresetInfo, error) {
	scenario, err := config.LoadPresetFile(path)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := scenario.Name
	if name == "" {
		name = id
	}

	return &models.PresetInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PresetSpecs{
			CapacityKWp:  scenario.CapacityKWp,
			HorizonYears: scenario.HorizonYears,
		},
	}, nil
}
