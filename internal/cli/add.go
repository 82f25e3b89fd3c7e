package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthside/yearbook/memory"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Record a memory",
		Long:  "Record a memory. Content can be a positional arg or piped via stdin.",
		Run:   runAdd,
	}

	cmd.Flags().StringP("category", "c", "", "Category (required; see 'yearbook categories')")
	cmd.Flags().StringP("author", "a", "", "Contributor display name (required)")
	cmd.Flags().StringP("photo", "p", "", "Photo file to attach (Family Photobook only)")

	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("author")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	categoryStr, _ := cmd.Flags().GetString("category")
	author, _ := cmd.Flags().GetString("author")
	photoPath, _ := cmd.Flags().GetString("photo")

	category, err := memory.ParseCategory(categoryStr)
	if err != nil {
		exitErr("add", err)
	}

	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}
	content = strings.TrimSpace(content)

	var imageURL string
	if photoPath != "" {
		if category != memory.CategoryPhotobook {
			exitErr("add", fmt.Errorf("photos can only be attached to the %q category", memory.CategoryPhotobook))
		}
		imageURL, err = encodePhoto(photoPath)
		if err != nil {
			exitErr("attach photo", err)
		}
	}

	app, err := newApp()
	if err != nil {
		exitErr("setup", err)
	}

	rec, err := app.Add(memory.Draft{
		Category: category,
		Content:  content,
		Author:   author,
		ImageURL: imageURL,
	})
	if err != nil {
		exitErr("add", err)
	}

	fmt.Printf("Saved memory %s (%d moments saved)\n", rec.ID, app.Count())
}

// encodePhoto embeds the photo file as a data URL.
func encodePhoto(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mimeType := mimeTypeFor(path)
	if mimeType == "" {
		return "", fmt.Errorf("unsupported photo format %q (expected jpg, jpeg or png)", filepath.Ext(path))
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return ""
	}
}
