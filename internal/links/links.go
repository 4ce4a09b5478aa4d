// Package links holds the contract-admin portal's quick links.
package links

import (
	"strings"

	"github.com/caportal/prorate-calculator/internal/markup"
)

// Link is one quick-link card.
type Link struct {
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Href        string `json:"href" yaml:"href"`
	CTA         string `json:"cta" yaml:"cta"`
}

// DefaultCTA is the call to action used when a link does not name one.
const DefaultCTA = "Learn More"

const partnerCenterURL = "https://partners.vendasta.com/"

var catalog = []Link{
	{
		Slug:        "gchat",
		Title:       "Google Chat",
		Description: "Connect with your team, ask questions, and collaborate in real-time. Your primary communication hub.",
		Href:        "https://chat.google.com",
		CTA:         "Open GChat",
	},
	{
		Slug:        "process-plays",
		Title:       "Historical Process Plays (Confluence)",
		Description: "Full of other historical documentation and SOPs for various forms of edge cases that you will eventually be accustomed to in the role. You aren't expected to know all of this right away, as these items are gradually learned. It is to serve as a reference for various edge cases that you may come across. Alternatively you can ask Andrew Fillo and will point you in the correct direction.",
		Href:        "https://vendasta.jira.com/wiki/spaces/SB/pages/1830814148/Contract+Process+Plays",
		CTA:         "View Confluence Page (New Tab)",
	},
	{
		Slug:        "pending-orders",
		Title:       "Pending Orders (VMF)",
		Description: "Access pending orders requiring action. In VMF (ensure PID is 'VMF'; switch from 'VA' if needed by clicking top-left logo area), go to **Commerce > Orders** & filter by 'Pending'.",
		Href:        partnerCenterURL,
		CTA:         "Go to Partner Center",
	},
	{
		Slug:        "partner-center",
		Title:       "Partner Center",
		Description: "Main portal for partner tasks. Ensure you operate within the VMF PID (select/search 'VMF' in top-left logo area; switch from 'VA' if necessary) for all contract-related activities.",
		Href:        partnerCenterURL,
		CTA:         "Open Partner Center",
	},
	{
		Slug:        "legal-agreements",
		Title:       "Legal Agreements (Drive)",
		Description: "Main Google Drive folder for all legal agreements. Contract-related work associated with these documents is typically done in the VMF PID.",
		Href:        "https://drive.google.com/drive/folders/0AHFDd277lxnHUk9PVA",
		CTA:         "Open Legal Agreements",
	},
	{
		Slug:        "cpas",
		Title:       "CPAs Folder (Drive)",
		Description: "Houses Internal/Signed Amendments, CPAs, and Volume Commitments, organized by partner. Create new folders for new partners. VMF PID is relevant for associated contract tasks.",
		Href:        "https://drive.google.com/drive/folders/1dB0qLeslXWB0g_mmsKnuDEGDfznGGC8t",
		CTA:         "Open CPAs Folder",
	},
	{
		Slug:        "ndas",
		Title:       "NDAs Folder (Drive)",
		Description: "Repository for actioned NDAs. Most are filed under 'All Other NDAs Executed' (prospects); Investor NDAs are infrequent. VMF PID is relevant for associated contract tasks.",
		Href:        "https://drive.google.com/drive/folders/0B1pI9Jnj1ER5aktRWklnbVFDNzQ?resourcekey=0-17inbM4PWfhCrzS225y6Gg",
		CTA:         "Open NDAs Folder",
	},
}

// All returns a copy of the catalog in display order.
func All() []Link {
	out := make([]Link, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks a link up by slug, ignoring case.
func Find(slug string) (Link, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, l := range catalog {
		if l.Slug == slug {
			return l, true
		}
	}
	return Link{}, false
}

// CallToAction returns the link's CTA text or DefaultCTA.
func (l Link) CallToAction() string {
	if l.CTA == "" {
		return DefaultCTA
	}
	return l.CTA
}

// View is a link with its description tokenized for rendering.
type View struct {
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Href        string        `json:"href"`
	CTA         string        `json:"cta"`
	Description string        `json:"description"`
	Spans       []markup.Line `json:"description_spans"`
}

// NewView tokenizes a link's description.
func NewView(l Link) View {
	return View{
		Slug:        l.Slug,
		Title:       l.Title,
		Href:        l.Href,
		CTA:         l.CallToAction(),
		Description: markup.RenderText(l.Description),
		Spans:       markup.Parse(l.Description),
	}
}

// Views converts the whole catalog.
func Views() []View {
	out := make([]View, 0, len(catalog))
	for _, l := range catalog {
		out = append(out, NewView(l))
	}
	return out
}
