package params

import (
	"context"
	"fmt"
	"os"

	get "github.com/hashicorp/go-getter"
)

// Fetch downloads a parameters file from src to dst. src is any address
// go-getter understands (local path, http, git::, s3::). The download is
// validated before it replaces dst.
func Fetch(ctx context.Context, src, dst string) (*Settings, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("fetch params: %w", err)
	}

	tmp := dst + ".tmp"
	client := &get.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  tmp,
		Pwd:  pwd,
		Mode: get.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch params %s: %w", src, err)
	}

	s, err := Load(tmp)
	if err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("fetch params %s: %w", src, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("fetch params: %w", err)
	}
	return s, nil
}
