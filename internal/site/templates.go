package site

// pageTemplate is the built-in page shell. The binding pass fills its
// sections from content and then drops the #templates container.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Site.Title}}</title>
  {{if .Site.Description}}<meta name="description" content="{{.Site.Description}}">{{end}}
  <link rel="stylesheet" href="style.css?v={{.BuildID}}">
</head>
<body data-build="{{.BuildID}}"{{if .LiveReload}} data-livereload="true"{{end}}>
  <header class="site-header">
    <h1 class="site-title">{{.Site.Title}}</h1>
    <nav class="site-nav" id="site-nav">
      {{range .Nav}}<button type="button" class="nav-btn" id="{{.ID}}">{{.Text}}</button>
      {{end}}
    </nav>
    <input type="search" id="search-input" placeholder="Search..." autocomplete="off">
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9680;</button>
  </header>
  <div class="search-results" id="search-results" hidden></div>

  <div class="page" id="home">
    <section id="featured">
      <div class="carousel">
        <div class="slides"></div>
        <span class="carousel-prev" aria-label="Previous">&#10094;</span>
        <span class="carousel-next" aria-label="Next">&#10095;</span>
        <div class="carousel-dots"></div>
      </div>
      <p class="nodata">No featured content yet.</p>
    </section>
    <section id="home-news">
      <h2 class="section-title">Latest news</h2>
      <div class="section-content"><p class="nodata">No news yet.</p></div>
    </section>
    <section id="home-gallery">
      <h2 class="section-title">From the gallery</h2>
      <div class="section-content"><p class="nodata">No photos yet.</p></div>
    </section>
    <section id="home-projects">
      <h2 class="section-title">Recent projects</h2>
      <div class="section-content"><p class="nodata">No projects yet.</p></div>
    </section>
  </div>

  <div class="page" id="news">
    <h2 class="section-title">News</h2>
    <div class="section-content"><p class="nodata">No news yet.</p></div>
  </div>

  <div class="page" id="gallery">
    <h2 class="section-title">Gallery</h2>
    <div class="section-content"><p class="nodata">No photos yet.</p></div>
  </div>

  <div class="page" id="projects-done">
    <h2 class="section-title">Projects</h2>
    <div class="section-content"><p class="nodata">No projects yet.</p></div>
  </div>

  <div class="page" id="officers">
    <h2 class="section-title">Officers</h2>
    <div class="section-content"><p class="nodata">No officers listed.</p></div>
  </div>

  <div class="page" id="about">
    <h2 class="section-title">About</h2>
    <article class="section-content about">
      {{if .About}}{{.About}}{{else}}<p class="nodata">Nothing here yet.</p>{{end}}
    </article>
  </div>

  <div id="modal" class="modal">
    <div class="modal-box">
      <div class="modal-header">
        <h2 class="modal-title"></h2>
        <span class="modal-close" aria-label="Close">&times;</span>
      </div>
      <div class="modal-content">
        <div class="modal-img"></div>
        <h3 class="modal-subtitle"></h3>
        <span class="modal-badge">Web developer</span>
        <p class="modal-description"></p>
        <div class="modal-link"></div>
        <ul class="modal-socials"></ul>
      </div>
    </div>
  </div>

  <div id="templates">
    <div class="card card-h template">
      <div class="card-h-img"></div>
      <div class="card-h-content">
        <h3 class="card-h-title"></h3>
        <h4 class="card-h-subtitle"></h4>
        <p class="card-h-description"></p>
      </div>
    </div>
    <div class="card card-v template">
      <div class="card-v-img"></div>
      <div class="card-v-content">
        <h3 class="card-v-title"></h3>
        <h4 class="card-v-subtitle"></h4>
        <p class="card-v-description"></p>
      </div>
    </div>
    <div class="card card-sm template">
      <div class="card-sm-img"></div>
      <div class="card-sm-content">
        <h3 class="card-sm-title"></h3>
        <h4 class="card-sm-subtitle"></h4>
        <p class="card-sm-description"></p>
      </div>
    </div>
    <div class="slide template">
      <div class="slide-img"></div>
      <div class="slide-caption">
        <h3 class="slide-title"></h3>
        <p class="slide-text"></p>
      </div>
    </div>
  </div>

  <footer class="site-footer">{{.Site.Title}}</footer>
  <script src="site.js?v={{.BuildID}}"></script>
</body>
</html>`

const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --overlay: rgba(0,0,0,0.55);
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.12);
  --radius: 8px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --overlay: rgba(0,0,0,0.75);
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

* { box-sizing: border-box; }
[hidden] { display: none !important; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

a { color: var(--accent); }
.clickable { cursor: pointer; }

.site-header {
  display: flex;
  flex-wrap: wrap;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 1.5rem;
  border-bottom: 1px solid var(--border);
  background: var(--bg-secondary);
}
.site-title { margin: 0; font-size: 1.3rem; }
.site-nav { display: flex; gap: 0.25rem; flex: 1; }
.nav-btn {
  border: none;
  background: none;
  color: var(--text);
  padding: 0.4rem 0.8rem;
  border-radius: var(--radius);
  font: inherit;
}
.nav-btn.active, .nav-btn:hover { background: var(--accent); color: #fff; }
#search-input {
  padding: 0.4rem 0.6rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  color: var(--text);
}
.theme-toggle { border: none; background: none; color: var(--text); font-size: 1.2rem; }

.search-results {
  margin: 0 1.5rem;
  padding: 0.5rem 1rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: var(--shadow-lg);
}
.search-results a { display: block; padding: 0.25rem 0; }

.page { padding: 1.5rem; max-width: 1200px; margin: 0 auto; }
.section-title { margin-top: 0; }
.section-content { display: flex; flex-wrap: wrap; gap: 1rem; }
.about.section-content { display: block; }
.nodata { color: var(--text-muted); font-style: italic; }

.card {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
  overflow: hidden;
}
.card img { width: 100%; height: 100%; object-fit: cover; display: block; }
.card h3 { margin: 0 0 0.25rem; }
.card h4 { margin: 0 0 0.5rem; color: var(--text-muted); font-weight: normal; }

.card-h { display: flex; width: 100%; }
.card-h-img { flex: 0 0 200px; }
.card-h-content { padding: 1rem; }

.card-v { display: flex; flex-direction: column; width: 300px; }
.card-v-img { height: 180px; }
.card-v-content { padding: 1rem; }

.card-sm { text-align: center; }
.card-sm-img { height: 160px; }
.card-sm-content { padding: 0.5rem; }
.card-sm.dev { border-color: var(--accent); }

.officer-header { width: 100%; margin: 1.5rem 0 0.5rem; }
.officer-grid { display: grid; gap: 1rem; width: 100%; }
.grid-cols-1 { grid-template-columns: repeat(1, 1fr); }
.grid-cols-2 { grid-template-columns: repeat(2, 1fr); }
.grid-cols-3 { grid-template-columns: repeat(3, 1fr); }
.grid-cols-4 { grid-template-columns: repeat(4, 1fr); }
.grid-cols-5 { grid-template-columns: repeat(5, 1fr); }
.grid-cols-6 { grid-template-columns: repeat(6, 1fr); }

.carousel { position: relative; max-height: 420px; overflow: hidden; border-radius: var(--radius); }
.slide img { width: 100%; max-height: 420px; object-fit: cover; display: block; }
.slide-caption {
  position: absolute;
  bottom: 0;
  left: 0;
  right: 0;
  padding: 0.75rem 1rem;
  background: var(--overlay);
  color: #fff;
}
.slide-caption h3 { margin: 0; }
.carousel-prev, .carousel-next {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  padding: 0.5rem 0.75rem;
  color: #fff;
  background: var(--overlay);
  user-select: none;
}
.carousel-prev { left: 0; }
.carousel-next { right: 0; }
.carousel-dots { position: absolute; top: 0.5rem; width: 100%; text-align: center; }
.dot {
  display: inline-block;
  width: 10px;
  height: 10px;
  margin: 0 3px;
  border-radius: 50%;
  background: #bbb;
  cursor: pointer;
}
.dot.active { background: #fff; }

.modal {
  position: fixed;
  inset: 0;
  z-index: 10;
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--overlay);
}
.modal-box {
  width: min(640px, 92vw);
  max-height: 90vh;
  overflow-y: auto;
  background: var(--bg);
  border-radius: var(--radius);
  box-shadow: var(--shadow-lg);
}
.modal-header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.75rem 1rem;
  border-bottom: 1px solid var(--border);
}
.modal-title { margin: 0; }
.modal-close { font-size: 1.6rem; line-height: 1; }
.modal-content { padding: 1rem; }
.modal-img img { max-width: 100%; border-radius: var(--radius); }
.modal-badge {
  display: inline-block;
  padding: 0.1rem 0.5rem;
  border-radius: 999px;
  background: var(--accent);
  color: #fff;
  font-size: 0.8rem;
}
.modal-socials { list-style: none; padding: 0; display: flex; gap: 1rem; }

.site-footer {
  padding: 1rem 1.5rem;
  border-top: 1px solid var(--border);
  color: var(--text-muted);
  text-align: center;
}

@media (max-width: 768px) {
  .card-h { flex-direction: column; }
  .card-h-img { flex-basis: auto; height: 180px; }
  .card-v { width: 100%; }
  .grid-cols-3, .grid-cols-4, .grid-cols-5, .grid-cols-6 { grid-template-columns: repeat(2, 1fr); }
}
`

// jsContent drives the bound page in the browser. Everything it needs was
// written into data-* attributes at build time.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("orgsite-theme", theme); } catch(e) {}
  }
  var stored = null;
  try { stored = localStorage.getItem("orgsite-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Modal =====
  var modal = document.getElementById("modal");
  var modalParts = modal ? {
    title: modal.querySelector(".modal-header .modal-title"),
    subtitle: modal.querySelector(".modal-content .modal-subtitle"),
    description: modal.querySelector(".modal-content .modal-description"),
    image: modal.querySelector(".modal-img"),
    link: modal.querySelector(".modal-link"),
    socials: modal.querySelector(".modal-socials"),
    badge: modal.querySelector(".modal-badge")
  } : null;

  function clearModal() {
    modalParts.title.textContent = "";
    modalParts.subtitle.textContent = "";
    modalParts.description.textContent = "";
    if (modalParts.image) modalParts.image.innerHTML = "";
    if (modalParts.link) modalParts.link.innerHTML = "";
    if (modalParts.socials) modalParts.socials.innerHTML = "";
    if (modalParts.badge) modalParts.badge.hidden = true;
  }

  function addLink(parent, href, text) {
    var a = document.createElement("a");
    a.href = href;
    a.textContent = text;
    if (href.indexOf("mailto:") !== 0) {
      a.target = "_blank";
      a.rel = "noopener";
    }
    parent.appendChild(a);
    return a;
  }

  function openModal(d) {
    clearModal();
    modalParts.title.textContent = d.modalTitle;
    modalParts.subtitle.textContent = d.modalSubtitle;
    modalParts.description.textContent = d.modalDescription;
    if (d.modalImg && modalParts.image) {
      var img = document.createElement("img");
      img.src = d.modalImg;
      img.alt = d.modalTitle;
      modalParts.image.appendChild(img);
    }
    if (d.modalUrl && modalParts.link) {
      addLink(modalParts.link, d.modalUrl, d.modalUrlText);
    }
    if (modalParts.socials) {
      if (d.modalEmail) {
        var li = document.createElement("li");
        addLink(li, "mailto:" + d.modalEmail, d.modalEmail);
        modalParts.socials.appendChild(li);
      }
      if (d.modalSocials) {
        try {
          JSON.parse(d.modalSocials).forEach(function(s) {
            var item = document.createElement("li");
            addLink(item, s.url, s.name);
            modalParts.socials.appendChild(item);
          });
        } catch(e) {}
      }
    }
    if (modalParts.badge) modalParts.badge.hidden = d.modalDev !== "true";
    modal.hidden = false;
  }

  function closeModal() {
    modal.hidden = true;
    clearModal();
  }

  if (modal) {
    var closeBtn = modal.querySelector(".modal-header .modal-close");
    if (closeBtn) closeBtn.addEventListener("click", closeModal);
    modal.addEventListener("click", function(e) {
      if (e.target === modal) closeModal();
    });
    document.addEventListener("keydown", function(e) {
      if (e.key === "Escape" && !modal.hidden) closeModal();
    });

    document.querySelectorAll("[data-modal-title]").forEach(function(card) {
      card.addEventListener("click", function(e) {
        if (e.target.closest("a") && card.contains(e.target.closest("a"))) return;
        openModal(card.dataset);
      });
    });
  }

  // ===== Navigation =====
  var sections = document.querySelectorAll("body > div.page");
  var navButtons = document.querySelectorAll("[data-nav-target]");

  function show(target) {
    sections.forEach(function(s) { s.hidden = s.id !== target; });
    navButtons.forEach(function(b) {
      b.classList.toggle("active", b.dataset.navTarget === target);
    });
  }

  navButtons.forEach(function(btn) {
    btn.addEventListener("click", function() { show(btn.dataset.navTarget); });
  });

  // ===== Carousel =====
  document.querySelectorAll(".carousel").forEach(function(root) {
    var slides = root.querySelectorAll(".slides .slide");
    var dots = root.querySelectorAll(".carousel-dots .dot");
    var n = slides.length;
    if (n === 0) return;

    var index = 1;
    slides.forEach(function(s, i) { if (!s.hidden) index = i + 1; });

    function jump(k) {
      index = ((k - 1) % n + n) % n + 1;
      slides.forEach(function(s, i) { s.hidden = i + 1 !== index; });
      dots.forEach(function(d, i) { d.classList.toggle("active", i + 1 === index); });
    }

    var prev = root.querySelector(".carousel-prev");
    var next = root.querySelector(".carousel-next");
    if (prev) prev.addEventListener("click", function() { jump(index - 1); });
    if (next) next.addEventListener("click", function() { jump(index + 1); });
    dots.forEach(function(d) {
      d.addEventListener("click", function() { jump(parseInt(d.dataset.slide, 10)); });
    });

    var interval = parseInt(root.dataset.interval, 10);
    if (n > 1 && interval > 0) {
      setInterval(function() { jump(index + 1); }, interval);
    }
  });

  // ===== Search (search-index.json) =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  fetch("search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  function match(entry, q) {
    if (entry.title.toLowerCase().indexOf(q) !== -1) return 2;
    var rest = ((entry.subtitle || "") + " " + (entry.description || "")).toLowerCase();
    return rest.indexOf(q) !== -1 ? 1 : 0;
  }

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      var q = this.value.toLowerCase().trim();
      searchResults.innerHTML = "";
      if (!q || !searchIndex) {
        searchResults.hidden = true;
        return;
      }
      var hits = searchIndex
        .map(function(e) { return { entry: e, score: match(e, q) }; })
        .filter(function(h) { return h.score > 0; })
        .sort(function(a, b) { return b.score - a.score; })
        .slice(0, 10);
      hits.forEach(function(h) {
        var a = document.createElement("a");
        a.href = "#";
        a.textContent = h.entry.title + " (" + h.entry.section + ")";
        a.addEventListener("click", function(e) {
          e.preventDefault();
          searchResults.hidden = true;
          var page = h.entry.page || h.entry.section;
          show(page);
          var card = h.entry.card_id && document.getElementById(h.entry.card_id);
          if (card) {
            card.scrollIntoView({ behavior: "smooth", block: "center" });
            card.click();
          }
        });
        searchResults.appendChild(a);
      });
      searchResults.hidden = hits.length === 0;
    });
  }

  // ===== Live reload (dev server only) =====
  if (body.dataset.livereload === "true" && window.WebSocket) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/livereload");
    ws.onmessage = function(msg) {
      if (msg.data === "reload") location.reload();
    };
  }
})();
`
