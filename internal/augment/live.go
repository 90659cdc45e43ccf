package augment

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"navsync/nav"
)

// liveSession drives the synchronizer inside a real browser tab over CDP.
// The same observer contract as the in-process core is installed as a page
// script: head childList mutations that insert a marker re-run
// reconciliation without our code in the call path.
type liveSession struct {
	allocator context.Context
	cancel    context.CancelFunc
	tab       context.Context
	tabCancel context.CancelFunc
	logger    *log.Logger
}

// NewLiveSession prepares a headless browser allocator. No browser is
// launched until Attach.
func NewLiveSession(logger *log.Logger) *liveSession {
	if logger == nil {
		logger = log.Default()
	}
	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-extensions", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), execOpts...)
	return &liveSession{
		allocator: allocCtx,
		cancel:    cancel,
		logger:    logger,
	}
}

// Close tears down the tab and the allocator.
func (s *liveSession) Close() {
	if s.tabCancel != nil {
		s.tabCancel()
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// Attach navigates a fresh tab to target and installs the observer bridge
// with the page hooks in opts.
func (s *liveSession) Attach(ctx context.Context, target, userAgent string, opts nav.Options) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("augment: live attach: empty target url")
	}
	if s.tabCancel != nil {
		s.tabCancel()
	}
	s.tab, s.tabCancel = chromedp.NewContext(s.allocator)

	actions := []chromedp.Action{}
	if userAgent != "" {
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(userAgent).Do(ctx)
		}))
	}
	actions = append(actions,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(bridgeScript(opts), nil),
	)

	runCtx, cancel := bindContext(s.tab, ctx)
	defer cancel()
	if err := chromedp.Run(runCtx, actions...); err != nil {
		return fmt.Errorf("augment: live attach %s: %w", target, err)
	}
	s.logger.Printf("LIVE attached %s", target)
	return nil
}

type liveSelectResult struct {
	OK       bool   `json:"ok"`
	Invalid  bool   `json:"invalid"`
	Restored string `json:"restored"`
}

// Select applies tag in the attached tab with the same transactional
// semantics as the in-process controller.
func (s *liveSession) Select(ctx context.Context, tag string) error {
	if strings.Contains(tag, " ") {
		return &nav.InvalidTagError{Tag: tag}
	}
	if s.tab == nil {
		return fmt.Errorf("augment: live select: no attached tab")
	}
	var res liveSelectResult
	runCtx, cancel := bindContext(s.tab, ctx)
	defer cancel()
	expr := fmt.Sprintf("window.__navsync.selectLink(%q)", tag)
	if err := chromedp.Run(runCtx, chromedp.Evaluate(expr, &res)); err != nil {
		return fmt.Errorf("augment: live select %q: %w", tag, err)
	}
	if res.Invalid {
		return &nav.InvalidTagError{Tag: tag}
	}
	if !res.OK {
		return &nav.NoMatchingTabError{Tag: tag, Restored: res.Restored}
	}
	s.logger.Printf("LIVE selected %q", tag)
	return nil
}

// CurrentTag reads the marker value from the attached tab.
func (s *liveSession) CurrentTag(ctx context.Context) (string, error) {
	if s.tab == nil {
		return "", fmt.Errorf("augment: live current: no attached tab")
	}
	var tag string
	runCtx, cancel := bindContext(s.tab, ctx)
	defer cancel()
	if err := chromedp.Run(runCtx, chromedp.Evaluate("window.__navsync.current()", &tag)); err != nil {
		return "", fmt.Errorf("augment: live current: %w", err)
	}
	return tag, nil
}

// bindContext derives a run context from the tab that also honours the
// caller's cancellation.
func bindContext(tab, caller context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(tab)
	if caller != nil {
		go func() {
			select {
			case <-caller.Done():
				cancel()
			case <-runCtx.Done():
			}
		}()
	}
	return runCtx, cancel
}

// bridgeScript renders the in-page half of the synchronizer: the matcher,
// reconciler, controller entry point and the marker-insertion observer,
// parameterized by the effective nav options.
func bridgeScript(opts nav.Options) string {
	opts = opts.WithDefaults()
	return fmt.Sprintf(liveBridgeJS,
		opts.ContainerSelector, opts.ItemClass, opts.TagListAttr,
		opts.SelectedClass, opts.MarkerElement, opts.MarkerName,
		opts.MarkerValueAttr)
}

const liveBridgeJS = `(() => {
  if (window.__navsync) return;
  const cfg = {container: %q, itemClass: %q, attr: %q, selectedClass: %q,
               markerElement: %q, markerName: %q, valueAttr: %q};
  const matches = (list, tag) => tag !== '' && list.split(' ').indexOf(tag) !== -1;
  const items = () => Array.from(document.querySelectorAll(cfg.container + ' .' + cfg.itemClass));
  const reconcile = (tag) => {
    let matched = 0;
    for (const item of items()) {
      const selected = matches(item.getAttribute(cfg.attr) || '', tag || '');
      item.classList.toggle(cfg.selectedClass, selected);
      if (selected) { item.setAttribute('aria-current', 'page'); matched++; }
      else { item.removeAttribute('aria-current'); }
    }
    return matched;
  };
  const marker = () => document.head.querySelector(cfg.markerElement + '[name="' + cfg.markerName + '"]');
  const readAndApply = (m) => { const tag = m.getAttribute(cfg.valueAttr); if (tag) reconcile(tag); };
  new MutationObserver((records) => {
    for (const record of records) {
      for (const node of record.addedNodes) {
        if (node.nodeType !== Node.ELEMENT_NODE) continue;
        if (node.tagName.toLowerCase() !== cfg.markerElement) continue;
        if (node.getAttribute('name') === cfg.markerName) readAndApply(node);
      }
    }
  }).observe(document.head, {childList: true});
  window.__navsync = {
    selectLink(tag) {
      if (tag.indexOf(' ') !== -1) return {ok: false, invalid: true, restored: ''};
      const m = marker();
      if (!m) throw new Error('navsync: selection marker missing');
      const original = m.getAttribute(cfg.valueAttr);
      m.setAttribute(cfg.valueAttr, tag);
      if (reconcile(tag) === 0) {
        let restored = '';
        if (original) { m.setAttribute(cfg.valueAttr, original); restored = original; }
        return {ok: false, invalid: false, restored: restored};
      }
      return {ok: true, invalid: false, restored: ''};
    },
    current() { const m = marker(); return m ? (m.getAttribute(cfg.valueAttr) || '') : ''; },
  };
})();`
