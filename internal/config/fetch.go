package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
)

// PresetDir is where fetched presets are cached.
func PresetDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "islandgen", "presets")
	}
	return filepath.Join(dir, "islandgen", "presets")
}

// Fetch downloads a single preset file into dir and returns its local path.
// src is any go-getter address: a local path, https://, git::, s3:: and so on.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("fetch preset: empty source")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, presetName(src))
	if err := os.RemoveAll(dst); err != nil {
		return "", err
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch preset %s: %w", src, err)
	}
	return dst, nil
}

// presetName derives the cached file name from the last path element of src.
func presetName(src string) string {
	src, _, _ = strings.Cut(src, "?")
	if i := strings.LastIndex(src, "//"); i >= 0 && i+2 < len(src) && !strings.HasSuffix(src[:i], ":") {
		src = src[i+2:]
	}
	name := filepath.Base(filepath.FromSlash(src))
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return name
	}
	return "preset.yaml"
}
