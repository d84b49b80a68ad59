package editcore

import (
	"path/filepath"
	"strings"
)

// FileType identifies the language of a document. It is detected from the
// filename when a document is created and is immutable thereafter.
type FileType int

// File types.
const (
	FileTypePlain FileType = iota
	FileTypePython
	FileTypeRust
	FileTypeJavaScript
	FileTypeTypeScript
	FileTypeHTML
	FileTypeCSS
	FileTypeDockerfile
	FileTypeYAML
)

// String returns a human-readable name for the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypePython:
		return "Python"
	case FileTypeRust:
		return "Rust"
	case FileTypeJavaScript:
		return "JavaScript"
	case FileTypeTypeScript:
		return "TypeScript"
	case FileTypeHTML:
		return "HTML"
	case FileTypeCSS:
		return "CSS"
	case FileTypeDockerfile:
		return "Dockerfile"
	case FileTypeYAML:
		return "YAML"
	default:
		return "Plain"
	}
}

// wellKnownFiles maps exact filenames (without a useful extension, or with an
// extension that alone would be ambiguous) to their file type. Lowercase keys
// are matched case-insensitively; "Dockerfile" is matched as written first.
var wellKnownFiles = map[string]FileType{
	"Dockerfile":          FileTypeDockerfile,
	".travis.yml":         FileTypeYAML,
	".gitlab-ci.yml":      FileTypeYAML,
	"docker-compose.yml":  FileTypeYAML,
	"docker-compose.yaml": FileTypeYAML,
	"appveyor.yml":        FileTypeYAML,
	"circle.yml":          FileTypeYAML,
	"wercker.yml":         FileTypeYAML,
	"ansible.yml":         FileTypeYAML,
	"playbook.yml":        FileTypeYAML,
	"site.yml":            FileTypeYAML,
}

// extensions maps lowercase file extensions to their file type.
var extensions = map[string]FileType{
	".py":   FileTypePython,
	".rs":   FileTypeRust,
	".js":   FileTypeJavaScript,
	".ts":   FileTypeTypeScript,
	".tsx":  FileTypeTypeScript,
	".html": FileTypeHTML,
	".htm":  FileTypeHTML,
	".css":  FileTypeCSS,
	".yaml": FileTypeYAML,
	".yml":  FileTypeYAML,
}

// workflowPrefixes are directory prefixes whose YAML-suffixed contents are
// always YAML, regardless of the filename.
var workflowPrefixes = []string{".github/"}

// DetectFileType returns the file type for the given filename. Detection is
// pure and deterministic; resolution order is exact well-known filename,
// workflow-directory heuristic, extension lookup, then FileTypePlain.
func DetectFileType(filename string) FileType {
	name := filepath.ToSlash(filename)

	if ft, ok := wellKnownFiles[name]; ok {
		return ft
	}
	if ft, ok := wellKnownFiles[strings.ToLower(name)]; ok {
		return ft
	}

	for _, prefix := range workflowPrefixes {
		if strings.HasPrefix(name, prefix) && hasYAMLSuffix(name) {
			return FileTypeYAML
		}
	}

	if ft, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return ft
	}

	return FileTypePlain
}

func hasYAMLSuffix(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml")
}
