package htmlpage

import (
	"fmt"
	"html"
	"strings"
)

const stylesheet = `
        :root {
            --sage: #5f8f74;
            --sage-dark: #44705a;
            --sage-light: #9cc7ad;
            --sand: #f6f1e8;
            --card: #ffffff;
            --border: #e2dccf;
            --ink: #2f3a34;
            --muted: #7a857f;
        }
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: var(--sand);
            color: var(--ink);
            line-height: 1.6;
        }
        .sticky-nav {
            position: sticky;
            top: 0;
            z-index: 1000;
            background: var(--sand);
            padding: 20px 20px 10px;
            border-bottom: 2px solid var(--border);
        }
        header, .controls, .category-filters, .snapshot {
            max-width: 1200px;
            margin: 0 auto 15px;
        }
        h1 {
            font-size: 2rem;
            color: var(--sage-dark);
        }
        .subtitle, .snapshot {
            color: var(--muted);
            font-size: 0.9rem;
        }
        .controls {
            display: flex;
            gap: 15px;
            align-items: center;
        }
        .search-box {
            flex: 1;
        }
        #search, #sort-by {
            width: 100%;
            padding: 12px 15px;
            font-size: 1rem;
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 8px;
            color: var(--ink);
        }
        #search:focus, #sort-by:focus {
            outline: none;
            border-color: var(--sage);
        }
        .sort-box {
            min-width: 200px;
        }
        .category-filters {
            display: flex;
            flex-wrap: wrap;
            gap: 10px;
        }
        .category-filter {
            background: var(--card);
            border: 2px solid var(--border);
            color: var(--ink);
            padding: 6px 16px;
            border-radius: 999px;
            font-size: 0.9rem;
            text-decoration: none;
        }
        .category-filter:hover {
            border-color: var(--sage);
        }
        .category-filter.active {
            background: var(--sage);
            border-color: var(--sage);
            color: #fff;
            font-weight: 600;
        }
        .content-wrapper {
            padding: 20px;
        }
        .category-section {
            max-width: 1200px;
            margin: 0 auto 40px;
        }
        .category-title {
            font-size: 1.3rem;
            margin-bottom: 15px;
            color: var(--sage-dark);
            border-bottom: 2px solid var(--border);
            padding-bottom: 8px;
        }
        .resource-grid {
            max-width: 1200px;
            margin: 0 auto;
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(250px, 1fr));
            gap: 20px;
        }
        .resource-card {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 15px;
            transition: all 0.2s;
            text-decoration: none;
            color: inherit;
            display: block;
        }
        a.resource-card:hover {
            transform: translateY(-2px);
            border-color: var(--sage);
        }
        .resource-thumb img, .detail-thumb {
            width: 100%;
            max-height: 200px;
            object-fit: cover;
            border-radius: 4px;
            margin-bottom: 12px;
        }
        .resource-title, .detail-title {
            font-weight: 600;
            margin-bottom: 5px;
        }
        .resource-meta, .meta {
            color: var(--muted);
            font-size: 0.9rem;
            margin-bottom: 8px;
            display: flex;
            gap: 10px;
        }
        .badge {
            background: var(--sage-light);
            color: var(--sage-dark);
            padding: 2px 8px;
            border-radius: 4px;
            font-size: 0.8rem;
        }
        .resource-tags {
            display: flex;
            flex-wrap: wrap;
            gap: 5px;
            margin-bottom: 8px;
        }
        .tag {
            background: var(--sand);
            color: var(--muted);
            padding: 3px 8px;
            border-radius: 4px;
            font-size: 0.8rem;
        }
        .detail {
            max-width: 720px;
            margin: 0 auto;
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 24px;
        }
        .back {
            display: inline-block;
            margin-bottom: 16px;
            color: var(--sage-dark);
        }
        .no-results, .status {
            text-align: center;
            color: var(--muted);
            padding: 40px;
            font-size: 1.1rem;
        }
        .status.error {
            color: #a5483a;
        }
        .spinner {
            width: 32px;
            height: 32px;
            margin: 0 auto 12px;
            border: 3px solid var(--border);
            border-top-color: var(--sage);
            border-radius: 50%;
            animation: spin 1s linear infinite;
        }
        @keyframes spin {
            to { transform: rotate(360deg); }
        }
        footer {
            text-align: center;
            color: var(--muted);
            padding: 30px;
            font-size: 0.85rem;
        }
        @media (max-width: 768px) {
            .controls {
                flex-direction: column;
            }
            .sort-box {
                width: 100%;
            }
            .resource-grid {
                grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
            }
        }
`

func writeHead(s *strings.Builder, title string) {
	fmt.Fprintf(s, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>%s    </style>
</head>
`, html.EscapeString(title), stylesheet)
}
