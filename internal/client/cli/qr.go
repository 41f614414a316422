package cli

import (
	"context"
	"fmt"
	"os"

	"qrstudio/internal/client/preview"
)

// Preview forces a regeneration right away instead of waiting out the
// debounce window, then reports where the preview landed.
func (a *App) Preview(ctx context.Context) error {
	a.orch.Refresh()
	if path := a.orch.PreviewPath(); path != "" {
		fmt.Fprintf(a.out, "preview: %s\n", path)
	}
	return nil
}

// Download saves the QR in the selected target format. With an empty path
// the file lands in the working directory as qrcode.<ext>.
func (a *App) Download(ctx context.Context, path string) error {
	if path == "" {
		path = "qrcode." + a.orch.Form().Format.Extension()
	}
	if err := a.orch.Download(ctx, path); err != nil {
		// the orchestrator already notified the user
		a.log.Warn(ctx, "download failed", "error", err)
		return err
	}
	return nil
}

// UploadDocument uploads a file and routes the returned URL into the
// content field, so the QR points at the stored document.
func (a *App) UploadDocument(ctx context.Context, path string) error {
	url, err := a.uploadFile(ctx, path)
	if err != nil {
		return err
	}
	a.orch.Update(func(f *preview.FormState) { f.Content = url })
	fmt.Fprintf(a.out, "File uploaded; content now points at %s\n", url)
	return nil
}

// UploadLogo uploads an image and routes the returned URL into the logo
// field. "none" clears the logo.
func (a *App) UploadLogo(ctx context.Context, path string) error {
	if path == "none" {
		a.orch.Update(func(f *preview.FormState) { f.LogoURL = "" })
		return nil
	}
	url, err := a.uploadFile(ctx, path)
	if err != nil {
		return err
	}
	a.orch.Update(func(f *preview.FormState) { f.LogoURL = url })
	fmt.Fprintf(a.out, "Logo uploaded: %s\n", url)
	return nil
}

func (a *App) uploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "cannot open %s: %v\n", path, err)
		return "", err
	}
	defer f.Close()

	url, err := a.api.Upload(ctx, path, f)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return "", err
	}
	return url, nil
}
