package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuiltInGroup names the group holding scenes compiled into the binary
const BuiltInGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Value to pass to CreateScene
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// BuiltInScenes lists the scenes CreateScene knows by ID
func BuiltInScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          RandomSpheresSceneID,
			Name:        "Random Spheres",
			Description: "Grid of random diffuse, metal and glass spheres around three large ones",
			Group:       BuiltInGroup,
			Type:        "builtin",
		},
		{
			ID:          DefaultSceneID,
			Name:        "Default Scene",
			Description: "Diffuse, hollow glass and metal spheres on a green ground",
			Group:       BuiltInGroup,
			Type:        "builtin",
		},
	}
}

// ListSceneFiles scans dir for *.json scene files. An empty dir tries
// "scenes" and "../scenes"; a missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if dir == "" {
		for _, path := range []string{"scenes", "../scenes"} {
			if _, err := os.Stat(path); err == nil {
				dir = path
				break
			}
		}
	}
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ReadSceneMetadata(filePath)
		if err != nil {
			// Skip unreadable files but keep listing the rest
			fmt.Printf("Warning: failed to read metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ReadSceneMetadata reads name, description and group from a scene file,
// falling back to values derived from the file name
func ReadSceneMetadata(filePath string) (SceneInfo, error) {
	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(sceneIDFromPath(filePath)),
		Group:    "Scene Files",
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("invalid scene file: %w", err)
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	if header.Group != "" {
		info.Group = header.Group
	}
	info.Description = header.Description
	return info, nil
}

// ListAllScenes returns built-in and file scenes grouped by category,
// built-ins first and the rest alphabetically
func ListAllScenes(dir string) ([]SceneGroup, error) {
	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltInScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, s := range allScenes {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != BuiltInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	groups := []SceneGroup{{Name: BuiltInGroup, Scenes: groupMap[BuiltInGroup]}}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups, nil
}

func sceneIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
