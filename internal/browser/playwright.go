package browser

import (
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"
)

// launchChromium installs the Playwright driver if needed, starts it and
// launches a Chromium window with a single page. The returned shutdown
// func tears down the page, the browser and the driver.
func launchChromium(opts LaunchOptions) (Page, func() error, error) {
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, nil, fmt.Errorf("install playwright: %w", err)
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("start playwright: %w", err)
	}

	chromium, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     []string{"--no-sandbox"},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, nil, fmt.Errorf("launch chromium: %w", err)
	}
	page, err := chromium.NewPage()
	if err != nil {
		_ = chromium.Close()
		_ = pw.Stop()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	shutdown := func() error {
		_ = page.Close()
		_ = chromium.Close()
		return pw.Stop()
	}
	return &playwrightPage{page: page, stepTimeout: opts.StepTimeout}, shutdown, nil
}

// playwrightPage adapts a playwright.Page to the Page interface. Every
// wait carries the same fixed step timeout; timeouts do not compose
// across steps.
type playwrightPage struct {
	page        playwright.Page
	stepTimeout time.Duration
}

func (p *playwrightPage) timeoutMS() *float64 {
	return playwright.Float(float64(p.stepTimeout.Milliseconds()))
}

func (p *playwrightPage) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   p.timeoutMS(),
	})
	if err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p *playwrightPage) WaitSettled() error {
	err := p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: p.timeoutMS(),
	})
	if err != nil {
		return fmt.Errorf("wait for load state: %w", err)
	}
	return nil
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) WaitFor(selector string) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: p.timeoutMS(),
	})
	if err != nil {
		return fmt.Errorf("wait for %s: %w", selector, err)
	}
	return nil
}

func (p *playwrightPage) Fill(selector, value string) error {
	err := p.page.Fill(selector, value, playwright.PageFillOptions{Timeout: p.timeoutMS()})
	if err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}

func (p *playwrightPage) Click(selector string) error {
	err := p.page.Click(selector, playwright.PageClickOptions{Timeout: p.timeoutMS()})
	if err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

func (p *playwrightPage) Query(selector string) ([]Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", selector, err)
	}
	elements := make([]Element, 0, len(handles))
	for _, h := range handles {
		elements = append(elements, &playwrightElement{handle: h})
	}
	return elements, nil
}

func (p *playwrightPage) TypeKeys(text string) error {
	if err := p.page.Keyboard().Type(text); err != nil {
		return fmt.Errorf("type text: %w", err)
	}
	return nil
}

func (p *playwrightPage) Press(key string) error {
	if err := p.page.Keyboard().Press(key); err != nil {
		return fmt.Errorf("press %s: %w", key, err)
	}
	return nil
}

type playwrightElement struct {
	handle playwright.ElementHandle
}

func (e *playwrightElement) Text() (string, error) {
	return e.handle.TextContent()
}

func (e *playwrightElement) Click() error {
	return e.handle.Click()
}
