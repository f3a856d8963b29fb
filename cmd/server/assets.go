package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// uploader is implemented by *store.MinioStore.
type uploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

func newAssetsCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage static assets in object storage",
	}

	var prefix string
	push := &cobra.Command{
		Use:   "push <file>...",
		Short: "Upload files to the assets bucket",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if cfg.MinioEndpoint == "" {
				return errors.New("MINIO_ENDPOINT is required")
			}
			ms, err := openMinio(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			for _, path := range args {
				key := assetKey(prefix, path)
				if err := pushFile(cmd.Context(), ms, key, path); err != nil {
					return err
				}
				log.Info("asset uploaded", "key", key, "bucket", cfg.MinioBucket)
			}
			return nil
		},
	}
	push.Flags().StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	cmd.AddCommand(push)
	return cmd
}

func assetKey(prefix, path string) string {
	key := filepath.Base(path)
	if prefix != "" {
		key = filepath.ToSlash(filepath.Join(prefix, key))
	}
	return key
}

func pushFile(ctx context.Context, up uploader, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	ct, err := contentType(f, path)
	if err != nil {
		return err
	}
	if err := up.Upload(ctx, key, f, info.Size(), ct); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// contentType guesses from the extension, then sniffs the first 512 bytes.
// f is rewound afterwards.
func contentType(f io.ReadSeeker, path string) (string, error) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct, nil
	}
	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
