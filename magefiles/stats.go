//go:build mage

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
)

// sourceRoots are the directories whose Go files Stats counts.
var sourceRoots = []string{"cmd", "internal", "pkg"}

// Stats prints Go lines of code per source root and documentation word
// counts as one JSON record.
func Stats() error {
	record := map[string]int{}
	var prodLines, testLines int

	for _, root := range sourceRoots {
		prod, test, err := countGoLines(root)
		if err != nil {
			return err
		}
		record["go_loc_"+root] = prod + test
		prodLines += prod
		testLines += test
	}
	record["go_loc_prod"] = prodLines
	record["go_loc_test"] = testLines
	record["go_loc"] = prodLines + testLines

	for key, pattern := range map[string]string{
		"doc_wc_readme": "README.md",
		"doc_wc_design": "DESIGN.md",
		"doc_wc_docs":   "docs/*.md",
	} {
		words, err := countWordsInGlob(pattern)
		if err != nil {
			return err
		}
		record[key] = words
	}

	line, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// countGoLines walks root and splits its Go line count into production and
// test lines. A missing root counts as zero.
func countGoLines(root string) (prod, test int, err error) {
	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		return 0, 0, nil
	}
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			test += count
		} else {
			prod += count
		}
		return nil
	})
	return prod, test, err
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

func countWordsInGlob(pattern string) (int, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, nil
	}
	total := 0
	for _, path := range matches {
		words, wordErr := countWordsInFile(path)
		if wordErr != nil {
			continue
		}
		total += words
	}
	return total, nil
}

func countWordsInFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	count := 0
	inWord := false
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count, nil
}
