package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-drift/anchorui/pkg/config"
	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/style"
	"github.com/go-drift/anchorui/pkg/ui"
)

// maxSettleTurns bounds the queue turns run after loading a scene.
const maxSettleTurns = 100

// sceneOptions holds the flags shared by every scene command.
type sceneOptions struct {
	configPath string
	size       graphics.Size
	verbose    bool
}

// parseSceneArgs separates the shared flags from positional arguments.
func parseSceneArgs(args []string) (sceneOptions, []string, error) {
	var opts sceneOptions
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a file argument", arg)
			}
			i++
			opts.configPath = args[i]
		case "--size", "-s":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a WIDTHxHEIGHT argument", arg)
			}
			i++
			size, err := parseSize(args[i])
			if err != nil {
				return opts, nil, err
			}
			opts.size = size
		case "--verbose", "-V":
			opts.verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, nil, fmt.Errorf("unknown flag: %s", arg)
			}
			positional = append(positional, arg)
		}
	}
	return opts, positional, nil
}

func parseSize(s string) (graphics.Size, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	return graphics.Size{Width: w, Height: h}, nil
}

// scene is a loaded scene file.
//
// A scene file has three optional top-level entries:
//
//	import:            # style files, relative to the scene
//	  - theme.yaml
//	styles:            # inline style declarations
//	  Button: {height: 30}
//	ui:                # widget declarations created under the root
//	  Button: {id: ok}
type scene struct {
	path    string
	m       *ui.Manager
	imports []string
	handler errors.ErrorHandler
	restore errors.ErrorHandler
}

// loadScene builds a manager for the scene at path. Problems reported while
// loading reach handler; a nil handler logs them to stderr.
func loadScene(path string, opts sceneOptions, handler errors.ErrorHandler) (*scene, error) {
	cfg, err := loadConfig(path, opts)
	if err != nil {
		return nil, err
	}
	if handler == nil {
		handler = &errors.LogHandler{Verbose: cfg.Log.Verbose || opts.verbose, Out: stderr}
	}

	node, err := style.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	s := &scene{path: path, handler: handler}
	s.restore = errors.SetHandler(handler)

	m, err := ui.New(cfg)
	if err != nil {
		s.close()
		return nil, err
	}
	s.m = m

	dir := filepath.Dir(path)
	if imports := node.Child("import"); imports != nil {
		for _, file := range importPaths(imports) {
			if !filepath.IsAbs(file) {
				file = filepath.Join(dir, file)
			}
			if err := m.LoadStyleFile(file); err != nil {
				s.close()
				return nil, fmt.Errorf("failed to import %s: %w", file, err)
			}
			s.imports = append(s.imports, file)
		}
	}
	if styles := node.Child("styles"); styles != nil {
		if err := m.ImportStyles(styles); err != nil {
			s.close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if decls := node.Child("ui"); decls != nil {
		if _, err := m.LoadUI(decls, nil); err != nil {
			s.close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	s.settle()
	return s, nil
}

// importPaths accepts a single file or a sequence of files.
func importPaths(n *style.Node) []string {
	if n.HasValue() {
		return []string{n.Value()}
	}
	var paths []string
	for _, c := range n.Children() {
		if c.HasValue() {
			paths = append(paths, c.Value())
		}
	}
	return paths
}

func loadConfig(scenePath string, opts sceneOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOptional(filepath.Dir(scenePath))
	}
	if err != nil {
		return nil, err
	}
	if opts.size.Width > 0 {
		cfg.Screen.Width = opts.size.Width
		cfg.Screen.Height = opts.size.Height
	}
	return cfg, nil
}

// settle runs queued work until the queue drains.
func (s *scene) settle() {
	for i := 0; i < maxSettleTurns; i++ {
		if s.m.Poll() == 0 {
			return
		}
	}
}

func (s *scene) close() {
	if s.m != nil {
		s.m.Terminate()
	}
	errors.SetHandler(s.restore)
}
