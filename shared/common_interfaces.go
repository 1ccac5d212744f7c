// Copyright (C) 2025 timbastin
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"
	"net/url"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
)

type UpstreamContentClient interface {
	List(ctx context.Context, kind CollectionKind, query url.Values) ([]dtos.ContentItem, error)
}

type ContentGateway interface {
	Kind() CollectionKind
	Fetch(ctx context.Context, query ContentQuery) FetchResult
}

type ContentService interface {
	Fetch(ctx context.Context, kind CollectionKind, query ContentQuery) FetchResult
}

type SitemapService interface {
	Render(ctx context.Context) ([]byte, error)
}

type RSSService interface {
	Render() ([]byte, error)
}

type TransitionSelector interface {
	Select(fromPath, toPath string, reducedMotion bool) string
}

// EventSink is the single consumer of analytics events.
type EventSink interface {
	Record(ctx context.Context, eventName string, properties map[string]any) error
}
