package providers

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/pkg/utils/language"
	"thirdcoast.systems/reelscout/pkg/utils/markdown"
)

const (
	wikidataBaseURL = "https://www.wikidata.org"
	commonsBaseURL  = "https://commons.wikimedia.org"

	// imageProperty is the Wikidata "image" property.
	imageProperty = "P18"
)

// Wikimedia resolves a person or subject name to the image Wikidata links
// it to, and reads that file's license from Commons.
type Wikimedia struct {
	fetch       Getter
	language    string
	wikidataURL string
	commonsURL  string
}

// NewWikimedia searches labels in lang, a BCP 47 tag reduced to its base
// language. Empty or invalid tags fall back to Korean.
func NewWikimedia(fetch Getter, lang string) *Wikimedia {
	tag, _ := language.Parse(lang)
	return &Wikimedia{
		fetch:       fetch,
		language:    tag.Base("ko"),
		wikidataURL: wikidataBaseURL,
		commonsURL:  commonsBaseURL,
	}
}

func (w *Wikimedia) Name() string { return media.ProviderWikimedia }

type entitySearch struct {
	Search []struct {
		ID string `json:"id"`
	} `json:"search"`
}

type entityData struct {
	Entities map[string]struct {
		Claims map[string][]struct {
			Mainsnak struct {
				Datavalue struct {
					Value any `json:"value"`
				} `json:"datavalue"`
			} `json:"mainsnak"`
		} `json:"claims"`
	} `json:"entities"`
}

type commonsImageInfo struct {
	Query struct {
		Pages map[string]struct {
			ImageInfo []struct {
				URL         string `json:"url"`
				ExtMetadata map[string]struct {
					Value any `json:"value"`
				} `json:"extmetadata"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// Search returns at most one item: the P18 image of the best matching entity.
func (w *Wikimedia) Search(ctx context.Context, query string, _ Options) []media.Item {
	if it, ok := w.lookup(ctx, query); ok {
		return []media.Item{it}
	}
	return nil
}

func (w *Wikimedia) lookup(ctx context.Context, name string) (media.Item, bool) {
	var found entitySearch
	err := w.fetch.GetJSON(ctx, w.wikidataURL+"/w/api.php", url.Values{
		"action":   {"wbsearchentities"},
		"search":   {name},
		"language": {w.language},
		"format":   {"json"},
		"limit":    {"1"},
	}, nil, &found)
	if err != nil {
		warnFetch(ctx, w.Name(), "wbsearchentities", err)
		return media.Item{}, false
	}
	if len(found.Search) == 0 || found.Search[0].ID == "" {
		return media.Item{}, false
	}
	qid := found.Search[0].ID

	var entity entityData
	if err := w.fetch.GetJSON(ctx, w.wikidataURL+"/wiki/Special:EntityData/"+url.PathEscape(qid)+".json", nil, nil, &entity); err != nil {
		warnFetch(ctx, w.Name(), "entitydata", err)
		return media.Item{}, false
	}
	claims := entity.Entities[qid].Claims[imageProperty]
	if len(claims) == 0 {
		return media.Item{}, false
	}
	filename := text(claims[0].Mainsnak.Datavalue.Value)
	if filename == "" {
		return media.Item{}, false
	}
	title := "File:" + filename

	var info commonsImageInfo
	err = w.fetch.GetJSON(ctx, w.commonsURL+"/w/api.php", url.Values{
		"action": {"query"},
		"prop":   {"imageinfo"},
		"iiprop": {"url|extmetadata"},
		"titles": {title},
		"format": {"json"},
	}, nil, &info)
	if err != nil {
		warnFetch(ctx, w.Name(), "imageinfo", err)
		return media.Item{}, false
	}

	pageIDs := make([]string, 0, len(info.Query.Pages))
	for id := range info.Query.Pages {
		pageIDs = append(pageIDs, id)
	}
	slices.Sort(pageIDs)
	if len(pageIDs) == 0 {
		return media.Item{}, false
	}
	ii := info.Query.Pages[pageIDs[0]].ImageInfo
	if len(ii) == 0 || ii[0].URL == "" {
		return media.Item{}, false
	}

	meta := ii[0].ExtMetadata
	attribution := markdown.StripHTML(text(meta["Artist"].Value))
	if attribution == "" {
		attribution = "Wikimedia Commons"
	}
	return media.Item{
		Provider:    media.ProviderWikimedia,
		Type:        media.TypePhoto,
		Preview:     ii[0].URL,
		Download:    ii[0].URL,
		License:     strings.TrimSpace(text(meta["LicenseShortName"].Value)),
		Attribution: attribution,
		SourceURL:   w.commonsURL + "/wiki/" + strings.ReplaceAll(title, " ", "_"),
	}, true
}
