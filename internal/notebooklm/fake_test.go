package notebooklm

import (
	"context"

	"github.com/asanchez/notebooklm-mcp/internal/browser"
)

// fakePage records every page interaction and serves canned DOM state.
type fakePage struct {
	url     string
	landURL map[string]string // navigation target -> URL actually landed on
	actions []string
	waitErr map[string]error
	queries map[string][]browser.Element
}

func newFakePage() *fakePage {
	return &fakePage{
		landURL: map[string]string{},
		waitErr: map[string]error{},
		queries: map[string][]browser.Element{},
	}
}

func (p *fakePage) Navigate(url string) error {
	p.actions = append(p.actions, "navigate:"+url)
	if landed, ok := p.landURL[url]; ok {
		p.url = landed
	} else {
		p.url = url
	}
	return nil
}

func (p *fakePage) WaitSettled() error {
	p.actions = append(p.actions, "settle")
	return nil
}

func (p *fakePage) URL() string { return p.url }

func (p *fakePage) WaitFor(selector string) error {
	p.actions = append(p.actions, "wait:"+selector)
	return p.waitErr[selector]
}

func (p *fakePage) Fill(selector, value string) error {
	p.actions = append(p.actions, "fill:"+selector+"="+value)
	return nil
}

func (p *fakePage) Click(selector string) error {
	p.actions = append(p.actions, "click:"+selector)
	return nil
}

func (p *fakePage) Query(selector string) ([]browser.Element, error) {
	p.actions = append(p.actions, "query:"+selector)
	return p.queries[selector], nil
}

func (p *fakePage) TypeKeys(text string) error {
	p.actions = append(p.actions, "type:"+text)
	return nil
}

func (p *fakePage) Press(key string) error {
	p.actions = append(p.actions, "press:"+key)
	return nil
}

type fakeElement struct {
	text    string
	clicked bool
}

func (e *fakeElement) Text() (string, error) { return e.text, nil }
func (e *fakeElement) Click() error          { e.clicked = true; return nil }

// fakeSession hands out one fixed page without launching anything.
type fakeSession struct {
	page browser.Page
}

func (s *fakeSession) Acquire(ctx context.Context) (browser.Page, func(), error) {
	return s.page, func() {}, nil
}
