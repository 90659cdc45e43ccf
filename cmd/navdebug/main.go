package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"navsync/nav"
)

func main() {
	tab := flag.String("tab", "", "tag to select; empty runs the passive read path")
	inspect := flag.Bool("inspect", false, "print item states instead of the document")
	flag.Parse()

	src := "-"
	if flag.NArg() > 0 {
		src = flag.Arg(0)
	}

	doc, err := loadDocument(src)
	if err != nil {
		log.Fatal(err)
	}

	ctrl, err := nav.NewController(doc, nav.Options{})
	if err != nil {
		log.Fatal(err)
	}
	if *tab != "" {
		if err := ctrl.SelectLink(*tab); err != nil {
			log.Fatal(err)
		}
	} else if m := doc.Markers(nav.Options{}).Marker(); m != nil {
		ctrl.ReadAndApply(m)
	}

	if *inspect {
		marker := doc.Markers(nav.Options{}).Marker()
		if marker != nil {
			fmt.Printf("marker=%q\n", marker.Value())
		} else {
			fmt.Println("marker=absent")
		}
		for _, st := range ctrl.Reconciler().States() {
			fmt.Printf("item tags=%q selected=%v aria=%v\n", st.TagList, st.SelectedClass, st.AriaCurrent)
		}
		audit := nav.AuditStyles(doc, nav.Options{})
		fmt.Printf("selected-class-styled=%v selectors=%v\n", audit.Styled, audit.Selectors)
		return
	}

	if err := doc.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func loadDocument(src string) (*nav.Document, error) {
	switch {
	case src == "-":
		return nav.Parse(os.Stdin)
	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		req, err := http.NewRequest(http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "navdebug/1.0")
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		return nav.Parse(resp.Body)
	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return nav.Parse(f)
	}
}
