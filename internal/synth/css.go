// internal/synth/css.go
package synth

import (
	"fmt"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// stylesheetSkeleton is the fixed rule set of every generated template. Only
// the custom property values vary between stores; the structural rules do
// not.
const stylesheetSkeleton = `:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --font-heading: %s;
  --font-body: %s;
}

* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: var(--font-body);
  color: var(--color-primary);
  line-height: 1.6;
  background: #ffffff;
}

h1, h2, h3, h4 {
  font-family: var(--font-heading);
  color: var(--color-primary);
}

.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem 2rem;
  border-bottom: 1px solid var(--color-secondary);
  background: #ffffff;
  position: sticky;
  top: 0;
  z-index: 100;
}

.site-header .logo {
  font-family: var(--font-heading);
  font-size: 1.5rem;
  font-weight: 700;
  color: var(--color-primary);
}

.main-nav {
  display: flex;
  gap: 1.5rem;
}

.main-nav a {
  color: var(--color-secondary);
  text-decoration: none;
}

.main-nav a:hover {
  color: var(--color-accent);
}

.search-bar {
  display: flex;
  gap: 0.5rem;
}

.search-bar input {
  padding: 0.5rem 0.75rem;
  border: 1px solid var(--color-secondary);
  border-radius: 4px;
}

.cart-widget {
  position: relative;
  color: var(--color-primary);
}

.hero {
  padding: 4rem 2rem;
  text-align: center;
  background: var(--color-primary);
  color: #ffffff;
}

.product-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 1.5rem;
  padding: 2rem;
}

.product-card {
  border: 1px solid var(--color-secondary);
  border-radius: 8px;
  overflow: hidden;
}

.product-card img {
  width: 100%%;
  aspect-ratio: 1;
  object-fit: cover;
}

.product-card .price {
  color: var(--color-accent);
  font-weight: 700;
}

.button,
.add-to-cart {
  display: inline-block;
  padding: 0.6rem 1.2rem;
  background: var(--color-accent);
  color: #ffffff;
  border: none;
  border-radius: 4px;
  cursor: pointer;
}

.site-footer {
  padding: 2rem;
  background: var(--color-primary);
  color: #ffffff;
}

.footer-links {
  display: flex;
  gap: 1rem;
  list-style: none;
}

.footer-links a {
  color: #ffffff;
  text-decoration: none;
}

@media (max-width: 768px) {
  .site-header {
    flex-direction: column;
    gap: 0.75rem;
  }
  .main-nav {
    flex-wrap: wrap;
    justify-content: center;
  }
  .product-grid {
    grid-template-columns: 1fr;
    padding: 1rem;
  }
}
`

// renderStylesheet substitutes the customization's palette and font stacks
// into the fixed skeleton.
func renderStylesheet(c schemas.TemplateCustomizations) string {
	return fmt.Sprintf(stylesheetSkeleton,
		c.Colors.Primary,
		c.Colors.Secondary,
		c.Colors.Accent,
		c.Typography.Heading.Stack,
		c.Typography.Body.Stack,
	)
}
