package config

import "strings"

// PathPattern is an environment-anchored, possibly wildcarded path template
// describing where a cache may live. Patterns reference user/system roots
// via %VAR% syntax and are resolved at clean time, never at catalog
// construction, so the catalog itself stays plain data.
type PathPattern struct {
	// Pattern is the template, e.g. `%LOCALAPPDATA%\JetBrains\*\caches`.
	Pattern string

	// Recurse requests recursive deletion of matched directories.
	// Without it, only single files and empty directories are removed.
	Recurse bool
}

// ToolStep is an external command's cache-clearing invocation. The command
// is presence-checked before use; absence is expected and not an error.
type ToolStep struct {
	// Name is the command looked up on PATH, e.g. "npm".
	Name string

	// Args is the cache-clearing invocation, e.g. ["cache", "clean", "--force"].
	Args []string

	// Destructive marks steps that can delete user-meaningful data beyond
	// simple caches (e.g. container images and volumes). Such steps require
	// explicit confirmation before running.
	Destructive bool
}

// Command returns the full invocation for display.
func (s ToolStep) Command() string {
	return strings.Join(append([]string{s.Name}, s.Args...), " ")
}

// Category is one named group of disposable-cache locations for a
// tool/ecosystem. Categories are immutable configuration data defined once
// at process start.
type Category struct {
	// ID is the unique identifier, e.g. "browsers".
	ID string

	// Label is the human-readable name shown in menus and reports.
	Label string

	// Patterns are resolved and removed in order.
	Patterns []PathPattern

	// Steps are external tool invocations, run after all pattern removals.
	Steps []ToolStep

	// RecycleBin requests emptying the Windows Recycle Bin via the Shell
	// API; the bin has no stable direct path.
	RecycleBin bool
}

// AllID is the id of the derived pseudo-category that runs every catalog
// category in declared order.
const AllID = "all"

// Catalog returns the built-in categories in their fixed execution order.
// A fresh slice is returned on every call so callers cannot mutate the
// catalog out from under each other.
func Catalog() []Category {
	return []Category{
		{
			ID:    "build-tools",
			Label: "Build tool caches",
			Patterns: []PathPattern{
				{Pattern: `%USERPROFILE%\.gradle\caches`, Recurse: true},
				{Pattern: `%USERPROFILE%\.m2\repository`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\go-build`, Recurse: true},
			},
			Steps: []ToolStep{
				{Name: "go", Args: []string{"clean", "-modcache"}},
			},
		},
		{
			ID:    "package-managers",
			Label: "Package manager caches",
			Patterns: []PathPattern{
				{Pattern: `%APPDATA%\npm-cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\npm-cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Yarn\Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\pnpm\store`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\pip\Cache`, Recurse: true},
				{Pattern: `%USERPROFILE%\.nuget\packages`, Recurse: true},
			},
			Steps: []ToolStep{
				{Name: "npm", Args: []string{"cache", "clean", "--force"}},
				{Name: "yarn", Args: []string{"cache", "clean"}},
				{Name: "pnpm", Args: []string{"store", "prune"}},
				{Name: "pip", Args: []string{"cache", "purge"}},
			},
		},
		{
			ID:    "mobile-sdks",
			Label: "Mobile SDK caches",
			Patterns: []PathPattern{
				{Pattern: `%USERPROFILE%\.android\build-cache`, Recurse: true},
				{Pattern: `%USERPROFILE%\.android\cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Pub\Cache`, Recurse: true},
			},
			Steps: []ToolStep{
				{Name: "flutter", Args: []string{"pub", "cache", "clean"}},
			},
		},
		{
			ID:    "ides",
			Label: "IDE caches",
			Patterns: []PathPattern{
				{Pattern: `%APPDATA%\Code\Cache`, Recurse: true},
				{Pattern: `%APPDATA%\Code\Cached*`, Recurse: true},
				{Pattern: `%APPDATA%\Code\logs`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\JetBrains\*\caches`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\JetBrains\*\tmp`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Microsoft\VisualStudio\ComponentModelCache`, Recurse: true},
			},
		},
		{
			ID:    "browsers",
			Label: "Browser caches",
			Patterns: []PathPattern{
				{Pattern: `%LOCALAPPDATA%\Google\Chrome\User Data\*\Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Google\Chrome\User Data\*\Code Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Google\Chrome\User Data\*\GPUCache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Microsoft\Edge\User Data\*\Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Microsoft\Edge\User Data\*\Code Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Microsoft\Edge\User Data\*\GPUCache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Mozilla\Firefox\Profiles\*\cache2`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Mozilla\Firefox\Profiles\*\startupCache`, Recurse: true},
			},
		},
		{
			ID:    "creative-apps",
			Label: "Creative app caches",
			Patterns: []PathPattern{
				{Pattern: `%APPDATA%\Adobe\Common\Media Cache Files`, Recurse: true},
				{Pattern: `%APPDATA%\Adobe\Common\Media Cache`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Figma\DesktopCache`, Recurse: true},
			},
		},
		{
			ID:    "game-engines",
			Label: "Game engine caches",
			Patterns: []PathPattern{
				{Pattern: `%LOCALAPPDATA%\Unity\cache`, Recurse: true},
				{Pattern: `%APPDATA%\Unity\Asset Store-5.x`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\UnrealEngine\Common\DerivedDataCache`, Recurse: true},
			},
		},
		{
			ID:    "containers",
			Label: "Container runtime",
			Steps: []ToolStep{
				// Prunes stopped containers, unused images, networks and
				// volumes. Volumes can hold real data, hence the gate.
				{Name: "docker", Args: []string{"system", "prune", "--volumes", "--force"}, Destructive: true},
			},
		},
		{
			ID:    "system-temp",
			Label: "Temporary files",
			Patterns: []PathPattern{
				{Pattern: `%TEMP%\*`, Recurse: true},
				{Pattern: `%WINDIR%\Temp\*`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Temp\*`, Recurse: true},
				{Pattern: `%LOCALAPPDATA%\Microsoft\Windows\Explorer\thumbcache_*.db`},
			},
		},
		{
			ID:         "recycle-bin",
			Label:      "Recycle Bin",
			RecycleBin: true,
		},
	}
}

// Find returns the category with the given id.
func Find(id string) (Category, bool) {
	for _, cat := range Catalog() {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
