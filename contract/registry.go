package contract

import "github.com/ferreirogomes/terrinha/models"

// AddProperty registers a new property record and returns its id. Listing
// curation is owner-gated: only the contract owner can register records,
// and new records start neither tokenized nor for sale.
func (c *Contract) AddProperty(caller string, price uint64, location, category string, area uint64, description string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return 0, err
	}
	if caller != c.owner {
		return 0, ErrNotOwner
	}
	if price == 0 || area == 0 {
		return 0, ErrInvalidPrice
	}

	p := models.Property{
		ID:          c.nextPropertyID,
		Owner:       caller,
		Price:       price,
		Location:    location,
		Category:    category,
		Area:        area,
		Description: description,
		CreatedAt:   c.now(),
	}
	c.properties[p.ID] = &p
	c.ownedIndex[caller] = append(c.ownedIndex[caller], p.ID)
	c.nextPropertyID++

	c.log.Info("property added", "property_id", p.ID, "price", p.Price)
	c.journalProperty(p)
	return p.ID, nil
}

// UpdateProperty lets the current owner change price, sale flag and
// description in place. Location, category and area are fixed at creation.
func (c *Contract) UpdateProperty(caller string, id, newPrice uint64, forSale bool, newDescription string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireNotPaused(); err != nil {
		return err
	}
	p, ok := c.properties[id]
	if !ok {
		return ErrNotFound
	}
	if caller != p.Owner {
		return ErrUnauthorized
	}
	if newPrice == 0 {
		return ErrInvalidPrice
	}

	p.Price = newPrice
	p.ForSale = forSale
	p.Description = newDescription

	c.journalProperty(*p)
	return nil
}

// transferOwnership moves a property between owned indices. Caller holds mu.
func (c *Contract) transferOwnership(p *models.Property, to string) {
	owned := c.ownedIndex[p.Owner]
	for i, id := range owned {
		if id == p.ID {
			c.ownedIndex[p.Owner] = append(owned[:i], owned[i+1:]...)
			break
		}
	}
	p.Owner = to
	c.ownedIndex[to] = append(c.ownedIndex[to], p.ID)
}
