package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/rtfconv"
)

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rtf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no .rtf files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		if err := rtfconv.ValidateInput(src); err != nil {
			fatalf("validate %s: %v", path, err)
		}
		for _, target := range rtfconv.Targets() {
			res, _, err := rtfconv.Convert(string(src), target, rtfconv.WithTheme(rtfconv.DefaultTheme()))
			if err != nil {
				fatalf("convert %s to %s: %v", path, target, err)
			}
			goldenPath := goldenTargetPath(path, target)
			if err := os.WriteFile(goldenPath, []byte(res.Text), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func goldenTargetPath(rtfPath string, target rtfconv.Target) string {
	return strings.TrimSuffix(rtfPath, ".rtf") + "." + target.String() + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
