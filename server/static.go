package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler 提供 www-root 下的静态文件
type staticHandler struct {
	root string
}

func newStaticHandler(root string) *staticHandler {
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	return &staticHandler{root: root}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.root == "" {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	full, ok := h.resolve(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Bad request")
		return
	}

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer f.Close()
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// resolve 拒绝跳出根目录的路径
func (h *staticHandler) resolve(urlPath string) (string, bool) {
	full := filepath.Join(h.root, filepath.FromSlash(urlPath))
	rel, err := filepath.Rel(h.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
