package usecase

import (
	"fmt"

	"scholar/internal/adapter/academic"
	"scholar/internal/adapter/authorstore"
	"scholar/internal/adapter/crossref"
	"scholar/internal/domain"
	"scholar/internal/port"
)

// IngestUseCase downloads author profiles and publications, cleans abstracts,
// enriches citation counts from Crossref, embeds article texts, and writes
// one JSON record per author to the authors directory.
type IngestUseCase struct {
	academic *academic.Client
	crossref *crossref.Client
	embedder port.Embedder
	authors  *authorstore.DirStore
}

func NewIngestUseCase(
	academicClient *academic.Client,
	crossrefClient *crossref.Client,
	embedder port.Embedder,
	authors *authorstore.DirStore,
) *IngestUseCase {
	return &IngestUseCase{
		academic: academicClient,
		crossref: crossrefClient,
		embedder: embedder,
		authors:  authors,
	}
}

// IngestResult contains the results of an ingestion run.
type IngestResult struct {
	AuthorsSaved     int
	AuthorsSkipped   int
	AuthorsExisting  int
	ArticlesEmbedded int
	Errors           []string
}

// IngestProgress is called after each faculty member is processed.
type IngestProgress func(processed, total int, name string)

// Ingest walks every unit and faculty member. Authors already on disk are
// skipped unless overwrite is set; authors with no publications are skipped
// and counted, never saved. Per-author failures are recorded and the run
// continues.
func (u *IngestUseCase) Ingest(overwrite bool, progress IngestProgress) (*IngestResult, error) {
	units, err := u.academic.Units()
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	var faculties []academic.Faculty
	for _, unit := range units {
		members, err := u.academic.Faculties(unit.UnitID)
		if err != nil {
			return nil, fmt.Errorf("failed to list faculties for %s: %w", unit.Name, err)
		}
		faculties = append(faculties, members...)
	}

	result := &IngestResult{}
	for i, faculty := range faculties {
		if !overwrite && u.authors.Exists(faculty.Identifier()) {
			result.AuthorsExisting++
		} else if err := u.ingestOne(faculty, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to ingest %s: %v", faculty.Identifier(), err))
		}
		if progress != nil {
			progress(i+1, len(faculties), faculty.Identifier())
		}
	}
	return result, nil
}

func (u *IngestUseCase) ingestOne(faculty academic.Faculty, result *IngestResult) error {
	apiArticles, err := u.academic.Articles(faculty.ID)
	if err != nil {
		return err
	}

	author := &domain.Author{
		ORCID:     faculty.Identifier(),
		FirstName: faculty.FirstName,
		LastName:  faculty.LastName,
	}
	for _, a := range apiArticles {
		author.Articles = append(author.Articles, u.parseArticle(a, author.ORCID))
	}

	if len(author.Articles) == 0 {
		result.AuthorsSkipped++
		return nil
	}

	embeddings, err := u.embedder.EmbedDocuments(author.Texts())
	if err != nil {
		return fmt.Errorf("failed to embed articles: %w", err)
	}
	author.ArticleEmbeddings = embeddings
	result.ArticlesEmbedded += len(embeddings)

	if err := u.authors.Save(author); err != nil {
		return err
	}
	result.AuthorsSaved++
	return nil
}

// parseArticle converts an API article, cleaning the abstract and pulling
// the citation count (and a fallback abstract) from Crossref when a DOI is
// available. Crossref failures leave the article unenriched rather than
// failing the author.
func (u *IngestUseCase) parseArticle(a academic.Article, orcid string) domain.Article {
	article := domain.Article{
		DOI:             a.DOI,
		Title:           a.Title,
		Abstract:        crossref.ToPlainText(a.Abstract),
		PublicationYear: a.JournalYear,
		AuthorORCID:     orcid,
	}

	if article.DOI != "" {
		if work, err := u.crossref.Work(article.DOI); err == nil {
			article.CitedBy = work.CitedBy
			if article.Abstract == "" {
				article.Abstract = crossref.ToPlainText(work.Abstract)
			}
		}
	}
	return article
}
