package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// systemWordLists are used only when no dictionary path is configured.
var systemWordLists = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// PathResolver finds the dictionary and config files relative to the binary,
// the working directory and the user's config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "spellserve")
		}
		return filepath.Join(homeDir, ".config", "spellserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "spellserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "spellserve")
	default:
		return filepath.Join(homeDir, ".config", "spellserve")
	}
}

// DictCandidates lists where a dictionary named by userPath may live, in order of preference:
// 1. userPath itself (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. inside the config directory
// The system word lists are candidates only when userPath is empty.
func (pr *PathResolver) DictCandidates(userPath string) []string {
	if userPath == "" {
		return append([]string(nil), systemWordLists...)
	}
	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userPath),
			filepath.Join(pr.configDir, filepath.Base(userPath)),
		)
	}
	return candidates
}

// ResolveDictPath returns the first existing candidate from DictCandidates.
// When nothing exists it returns userPath unchanged so the loader reports it
// and starts with an empty dictionary.
func (pr *PathResolver) ResolveDictPath(userPath string) string {
	for _, path := range pr.DictCandidates(userPath) {
		if IsRegularFile(path) {
			log.Debugf("Found dictionary: %s", path)
			return path
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return userPath
}

// GetConfigPath returns the full path for a config file, falling back to
// other writable locations when the config dir is read-only.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".spellserve"),
		filepath.Join(os.TempDir(), "spellserve"),
	}
	for i, dir := range dirs {
		if WritableDir(dir) {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}
