package domain

// PopupQueue holds URLs waiting to be opened in a new browsing context on
// the next render.
type PopupQueue struct {
	urls []string
}

func (q *PopupQueue) Open(url string) {
	q.urls = append(q.urls, url)
}

// Drain hands out the pending URLs once.
func (q *PopupQueue) Drain() []string {
	urls := q.urls
	q.urls = nil
	return urls
}
