package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/iw2rmb/genkou/essay"
)

// Export serializes the document in format f. Section content is written
// in full width.
func (c *Controller) Export(f essay.Format) ([]byte, error) {
	data, err := essay.Encode(c.Document(), f)
	if err != nil {
		c.log.Error("export failed", "format", f, "err", err)
		return nil, err
	}
	c.modified = false
	c.log.Info("document exported", "format", f, "sections", len(c.sections), "bytes", len(data))
	return data, nil
}

// Import reads a document in format f from r and replaces the current one.
// On any error the current document is left untouched.
func (c *Controller) Import(r io.Reader, f essay.Format) error {
	data, err := io.ReadAll(r)
	if err != nil {
		c.log.Warn("import read failed", "err", err)
		return fmt.Errorf("%w: %v", essay.ErrUnreadableFile, err)
	}
	doc, err := essay.Decode(data, f)
	if err != nil {
		c.log.Warn("import rejected", "format", f, "err", err)
		return err
	}
	c.load(doc)
	c.log.Info("document imported", "format", f, "sections", len(c.sections))
	return nil
}

// Send submits doc through the configured Submitter and returns the
// response document. Concurrent calls are serialized. Send reads no
// controller state besides the configuration, so a UI may run it off its
// event loop and hand the result to Replace.
func (c *Controller) Send(ctx context.Context, doc essay.Document) (essay.Document, error) {
	if c.cfg.Submitter == nil {
		return essay.Document{}, ErrNoSubmitter
	}
	select {
	case c.sendMu <- struct{}{}:
	case <-ctx.Done():
		return essay.Document{}, ctx.Err()
	}
	defer func() { <-c.sendMu }()

	resp, err := c.cfg.Submitter.Submit(ctx, doc)
	if err != nil {
		c.log.Warn("submit failed", "err", err)
		return essay.Document{}, err
	}
	c.log.Info("submit succeeded", "sections", len(resp.Sections))
	return resp, nil
}

// Submit sends the current document and, on success, replaces it with the
// response. On failure the document is unchanged.
func (c *Controller) Submit(ctx context.Context) error {
	resp, err := c.Send(ctx, c.Document())
	if err != nil {
		return err
	}
	c.load(resp)
	return nil
}
