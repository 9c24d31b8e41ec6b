package document

// Example is the starter document written by `sqlkit init`.
const Example = `requires: ">= 0.1.0"

tables:
  - name: authors
    columns:
      - {name: id, type: int, primary_key: true}
      - {name: name, type: text, not_null: true}

  - name: books
    columns:
      - {name: id, type: int, primary_key: true}
      - {name: author_id, type: int, not_null: true}
      - {name: title, type: text, not_null: true}
      - {name: price, type: double}
    foreign_keys:
      - columns: [author_id]
        references: {table: authors, columns: [id]}
        on_update: no action
        on_delete: cascade

filters:
  - name: cheap_books
    where: books.price < 10
  - name: catalog_search
    where: upper(books.title) like 'GO%' and (books.author_id in [1, 2] or books.price between [5, 20])
`
